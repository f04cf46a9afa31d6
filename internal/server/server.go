package server

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/apis"
	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/internal/server/middleware"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type CollectorServer struct {
	Router *chi.Mux
}

func CreateNewServer() (*CollectorServer, error) {
	s := &CollectorServer{}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *CollectorServer) MountHandlers() {
	s.Router.Use(httpx.RequestLogger)
	if config.Config().Server.HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Get("/health", s.getHealth)
	s.Router.Route("/auth", func(r chi.Router) {
		r.Use(middleware.LoadScopedDB)
		apis.AuthRouter(r)
	})
	s.Router.Group(func(r chi.Router) {
		r.Use(middleware.LoadScopedDB)
		r.Use(middleware.Authn)
		apis.ResourceRouter(r)
	})
}

func (s *CollectorServer) getHealth(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetHealth")
	requests, returns := db.Stats()
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]any{
		"status":      "ok",
		"db_requests": requests,
		"db_returns":  returns,
	})
}

func (s *CollectorServer) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set CORS headers
		w.Header().Set("Access-Control-Allow-Origin", config.Config().Server.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")

		// Check if the request method is OPTIONS
		if r.Method == "OPTIONS" {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			// Respond with appropriate headers and no body
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
