package middleware

import (
	"net/http"
	"strings"

	"github.com/collectorlists/collectorsrv/internal/auth"
	"github.com/collectorlists/collectorsrv/internal/common"
	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
)

var tokenIssuer = auth.NewTokenIssuer(&config.Config().Auth)

// Authn resolves the caller from the bearer access token. The subject must
// reference an existing user; refresh tokens are rejected here regardless of
// validity. On success the user ID is stored in the context and set as the
// connection's session scope. Runs after LoadScopedDB.
func Authn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			httpx.ErrUnauthorized("missing bearer token").Send(w)
			return
		}

		claims, err := tokenIssuer.Decode(tokenString)
		if err != nil {
			httpx.ErrUnauthorized("invalid token").Send(w)
			return
		}
		if claims.Type != auth.TokenTypeAccess {
			httpx.ErrUnauthorized("wrong token type").Send(w)
			return
		}
		userID, err := claims.UserId()
		if err != nil {
			httpx.ErrUnauthorized("invalid token subject").Send(w)
			return
		}

		user, err := db.DB(ctx).GetUser(ctx, userID)
		if err != nil {
			httpx.ErrUnauthorized("user not found").Send(w)
			return
		}

		ctx = common.SetUserIdInContext(ctx, userID)
		db.DB(ctx).AddScope(ctx, db.Scope_UserId, user.UserID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
