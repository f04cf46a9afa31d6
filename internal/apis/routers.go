package apis

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/pkg/httpx"
	"github.com/go-chi/chi/v5"
)

type handlerParam struct {
	Method  string
	Path    string
	Handler httpx.RequestHandler
}

var authHandlers = []handlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/register",
		Handler: register,
	},
	{
		Method:  http.MethodPost,
		Path:    "/login",
		Handler: login,
	},
	{
		Method:  http.MethodPost,
		Path:    "/refresh",
		Handler: refresh,
	},
}

var resourceHandlers = []handlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/collections",
		Handler: createCollection,
	},
	{
		Method:  http.MethodGet,
		Path:    "/collections",
		Handler: listCollections,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/collections/{collectionId}",
		Handler: deleteCollection,
	},
	{
		Method:  http.MethodPost,
		Path:    "/collections/{collectionId}/fields",
		Handler: createField,
	},
	{
		Method:  http.MethodGet,
		Path:    "/collections/{collectionId}/fields",
		Handler: listFields,
	},
	{
		Method:  http.MethodPost,
		Path:    "/collections/{collectionId}/items",
		Handler: createItem,
	},
	{
		Method:  http.MethodGet,
		Path:    "/collections/{collectionId}/items",
		Handler: listItems,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/items/{itemId}",
		Handler: deleteItem,
	},
	{
		Method:  http.MethodPost,
		Path:    "/items/{itemId}/values",
		Handler: upsertItemValues,
	},
	{
		Method:  http.MethodGet,
		Path:    "/items/{itemId}/values",
		Handler: listItemValues,
	},
	{
		Method:  http.MethodGet,
		Path:    "/search/games",
		Handler: searchGames,
	},
	{
		Method:  http.MethodGet,
		Path:    "/search/movies",
		Handler: searchMovies,
	},
}

// AuthRouter mounts the unauthenticated auth endpoints.
func AuthRouter(r chi.Router) {
	for _, handler := range authHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
}

// ResourceRouter mounts the endpoints that require an authenticated caller.
func ResourceRouter(r chi.Router) {
	for _, handler := range resourceHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
}
