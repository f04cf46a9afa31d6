package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(os.Stderr)

	ctx := log.Logger.WithContext(context.Background())

	if err := ensureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("unable to bootstrap database schema")
	}

	s, err := server.CreateNewServer()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to create server")
	}
	s.MountHandlers()

	listen := config.Config().Server.Listen
	log.Info().Str("listen", listen).Msg("starting collectorsrv")

	srv := &http.Server{
		Addr:              listen,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func ensureSchema(ctx context.Context) error {
	ctx = db.ConnCtx(ctx)
	d := db.DB(ctx)
	if d == nil {
		return errors.New("unable to get db connection")
	}
	defer d.Close(ctx)
	return d.EnsureSchema(ctx)
}
