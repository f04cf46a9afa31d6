package apis

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/internal/search"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapSearchClient points the handlers at a stub provider for one test.
func swapSearchClient(t *testing.T, client *search.Client) {
	t.Helper()
	orig := searchClient
	searchClient = client
	t.Cleanup(func() { searchClient = orig })
}

func TestSearchGamesHandler(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": 3498, "name": "Grand Theft Auto V", "background_image": "https://media.rawg.io/gta.jpg", "released": "2013-09-17"}]}`))
	}))
	defer upstream.Close()

	client := search.NewClient(&config.ProvidersConfig{RawgAPIKey: "test-key", TimeoutSeconds: 1})
	client.RawgBaseURL = upstream.URL
	swapSearchClient(t, client)

	req := httptest.NewRequest("GET", "/search/games?q=gta", nil)
	rsp, err := searchGames(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rsp.StatusCode)

	results, ok := rsp.Response.([]search.Result)
	require.True(t, ok)
	require.Len(t, results, 1)
	assert.Equal(t, "rawg", results[0].Source)
	assert.Equal(t, "3498", results[0].ExternalID)
	assert.Equal(t, "Grand Theft Auto V", results[0].Title)
}

func TestSearchMoviesHandler(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": 348, "title": "Alien", "poster_path": "/alien.jpg", "release_date": "1979-05-25"}]}`))
	}))
	defer upstream.Close()

	client := search.NewClient(&config.ProvidersConfig{TmdbAPIKey: "test-key", TimeoutSeconds: 1})
	client.TmdbBaseURL = upstream.URL
	swapSearchClient(t, client)

	req := httptest.NewRequest("GET", "/search/movies?q=alien", nil)
	rsp, err := searchMovies(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rsp.StatusCode)

	results, ok := rsp.Response.([]search.Result)
	require.True(t, ok)
	require.Len(t, results, 1)
	assert.Equal(t, "tmdb", results[0].Source)
	require.NotNil(t, results[0].CoverURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w342/alien.jpg", *results[0].CoverURL)
}

func TestSearchMissingQuery(t *testing.T) {
	req := httptest.NewRequest("GET", "/search/games", nil)
	_, err := searchGames(req)
	require.Error(t, err)

	var httpErr *httpx.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "missing query parameter q", httpErr.Description)

	req = httptest.NewRequest("GET", "/search/movies", nil)
	_, err = searchMovies(req)
	require.Error(t, err)
}
