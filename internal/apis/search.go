package apis

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/internal/search"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
)

// searchClient is swapped out in tests.
var searchClient = search.NewClient(&config.Config().Providers)

func searchGames(r *http.Request) (*httpx.Response, error) {
	query := r.URL.Query().Get("q")
	if query == "" {
		return nil, httpx.ErrInvalidRequest("missing query parameter q")
	}

	results, err := searchClient.SearchGames(r.Context(), query)
	if err != nil {
		return nil, ToHttpxError(err)
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   results,
	}, nil
}

func searchMovies(r *http.Request) (*httpx.Response, error) {
	query := r.URL.Query().Get("q")
	if query == "" {
		return nil, httpx.ErrInvalidRequest("missing query parameter q")
	}

	results, err := searchClient.SearchMovies(r.Context(), query)
	if err != nil {
		return nil, ToHttpxError(err)
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   results,
	}, nil
}
