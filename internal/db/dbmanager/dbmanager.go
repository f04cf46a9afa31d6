package dbmanager

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ScopedDb is a connection pool whose connections carry named session
// scopes. A scope is a per-connection setting the store layer can read back
// inside its queries; for Postgres it is a set_config variable.
type ScopedDb interface {
	// Conn checks a connection out of the pool.
	Conn(ctx context.Context) (ScopedConn, error)
	// Stats reports how many connections were handed out and given back.
	Stats() (requests, returns uint64)
}

// ScopedConn is one checked-out connection. Only scopes the pool was
// configured with can be set; Close clears every scope before the
// connection goes back to the pool.
type ScopedConn interface {
	AddScopes(ctx context.Context, scopes map[string]string)
	DropScopes(ctx context.Context, scopes []string) error
	AddScope(ctx context.Context, scope, value string)
	DropScope(ctx context.Context, scope string) error
	DropAllScopes(ctx context.Context) error
	// Conn exposes the underlying driver connection.
	Conn() any
	Close(ctx context.Context)
}

// NewScopedDb builds the pool for the named backend, nil when the backend
// is unknown or fails to initialize.
func NewScopedDb(ctx context.Context, dbtype string, configuredScopes []string) ScopedDb {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlDb(configuredScopes)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL DB")
			return nil
		}
		return db
	}
	return nil
}
