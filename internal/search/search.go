// Package search proxies the two third-party metadata lookup APIs (RAWG for
// games, TMDB for movies) and normalizes their responses to one shape.
package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

const maxResults = 10

var (
	ErrProvider      apperrors.Error = apperrors.New("search provider error").SetStatusCode(http.StatusInternalServerError)
	ErrNotConfigured apperrors.Error = ErrProvider.Msg("search provider not configured")
)

// Result is the normalized shape returned for both providers.
type Result struct {
	Source     string  `json:"source"`
	ExternalID string  `json:"external_id"`
	Title      string  `json:"title"`
	CoverURL   *string `json:"cover_url"`
	Released   *string `json:"released"`
}

// Client calls the providers with a fixed timeout. Calls are independent,
// synchronous, uncached and not retried; upstream failures surface as
// ErrProvider.
type Client struct {
	httpClient *http.Client
	rawgKey    string
	tmdbKey    string

	// Overridable in tests.
	RawgBaseURL   string
	TmdbBaseURL   string
	TmdbImageBase string
}

func NewClient(cfg *config.ProvidersConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		rawgKey:       cfg.RawgAPIKey,
		tmdbKey:       cfg.TmdbAPIKey,
		RawgBaseURL:   "https://api.rawg.io/api/games",
		TmdbBaseURL:   "https://api.themoviedb.org/3/search/movie",
		TmdbImageBase: "https://image.tmdb.org/t/p/w342",
	}
}

type rawgResponse struct {
	Results []struct {
		ID              int64   `json:"id"`
		Name            string  `json:"name"`
		BackgroundImage *string `json:"background_image"`
		Released        *string `json:"released"`
	} `json:"results"`
}

// SearchGames looks up games on RAWG, returning at most ten normalized
// results.
func (c *Client) SearchGames(ctx context.Context, query string) ([]Result, error) {
	if c.rawgKey == "" {
		return nil, ErrNotConfigured.Msg("RAWG api key not configured")
	}

	params := url.Values{}
	params.Set("key", c.rawgKey)
	params.Set("search", query)
	params.Set("page_size", strconv.Itoa(maxResults))

	var upstream rawgResponse
	if err := c.getJSON(ctx, c.RawgBaseURL+"?"+params.Encode(), &upstream); err != nil {
		return nil, err
	}

	results := []Result{}
	for _, g := range upstream.Results {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{
			Source:     "rawg",
			ExternalID: strconv.FormatInt(g.ID, 10),
			Title:      g.Name,
			CoverURL:   g.BackgroundImage,
			Released:   g.Released,
		})
	}
	return results, nil
}

type tmdbResponse struct {
	Results []struct {
		ID          int64   `json:"id"`
		Title       string  `json:"title"`
		PosterPath  *string `json:"poster_path"`
		ReleaseDate *string `json:"release_date"`
	} `json:"results"`
}

// SearchMovies looks up movies on TMDB. The provider returns a full page;
// results are truncated to ten here and relative poster paths are joined
// onto the image host.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Result, error) {
	if c.tmdbKey == "" {
		return nil, ErrNotConfigured.Msg("TMDB api key not configured")
	}

	params := url.Values{}
	params.Set("api_key", c.tmdbKey)
	params.Set("query", query)

	var upstream tmdbResponse
	if err := c.getJSON(ctx, c.TmdbBaseURL+"?"+params.Encode(), &upstream); err != nil {
		return nil, err
	}

	results := []Result{}
	for _, m := range upstream.Results {
		if len(results) == maxResults {
			break
		}
		var coverURL *string
		if m.PosterPath != nil && *m.PosterPath != "" {
			full := c.TmdbImageBase + *m.PosterPath
			coverURL = &full
		}
		var released *string
		if m.ReleaseDate != nil && *m.ReleaseDate != "" {
			released = m.ReleaseDate
		}
		results = append(results, Result{
			Source:     "tmdb",
			ExternalID: strconv.FormatInt(m.ID, 10),
			Title:      m.Title,
			CoverURL:   coverURL,
			Released:   released,
		})
	}
	return results, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ErrProvider.Err(err)
	}

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("search provider request failed")
		return ErrProvider.Err(err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		log.Ctx(ctx).Error().Int("status", rsp.StatusCode).Msg("search provider returned non-200")
		return ErrProvider.Msg("search provider returned " + strconv.Itoa(rsp.StatusCode))
	}

	if err := json.NewDecoder(rsp.Body).Decode(out); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to decode search provider response")
		return ErrProvider.Err(err)
	}
	return nil
}
