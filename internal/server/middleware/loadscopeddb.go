package middleware

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
)

// LoadScopedDB attaches a pooled database connection to the request context
// and guarantees its release when the request completes.
func LoadScopedDB(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := db.ConnCtx(r.Context())
		d := db.DB(ctx)
		if d == nil {
			httpx.ErrApplicationError("database unavailable").Send(w)
			return
		}
		defer d.Close(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
