package dbmanager

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/collectorlists/collectorsrv/internal/config"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/rs/zerolog/log"
)

// postgresqlDb hands out pooled connections that carry per-request session
// scopes (Postgres settings set via set_config). Scopes are cleared before a
// connection is returned to the pool so state never leaks across requests.
type postgresqlDb struct {
	db               *sql.DB
	configuredScopes []string
	requests         atomic.Uint64
	returns          atomic.Uint64
}

func NewPostgresqlDb(configuredScopes []string) (*postgresqlDb, error) {
	db, err := sql.Open("pgx", config.Config().Database.DSN)
	if err != nil {
		return nil, err
	}
	return &postgresqlDb{
		db:               db,
		configuredScopes: configuredScopes,
	}, nil
}

func (p *postgresqlDb) Conn(ctx context.Context) (ScopedConn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	p.requests.Add(1)
	return &postgresqlConn{conn: conn, pool: p}, nil
}

func (p *postgresqlDb) Stats() (requests, returns uint64) {
	return p.requests.Load(), p.returns.Load()
}

func (p *postgresqlDb) isConfiguredScope(scope string) bool {
	for _, s := range p.configuredScopes {
		if s == scope {
			return true
		}
	}
	return false
}

type postgresqlConn struct {
	conn *sql.Conn
	pool *postgresqlDb
}

func (c *postgresqlConn) AddScopes(ctx context.Context, scopes map[string]string) {
	for scope, value := range scopes {
		c.AddScope(ctx, scope, value)
	}
}

func (c *postgresqlConn) AddScope(ctx context.Context, scope, value string) {
	if !c.pool.isConfiguredScope(scope) {
		log.Ctx(ctx).Error().Str("scope", scope).Msg("attempt to set unconfigured scope")
		return
	}
	if _, err := c.conn.ExecContext(ctx, "SELECT set_config($1, $2, false)", scope, value); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("scope", scope).Msg("failed to set scope")
	}
}

func (c *postgresqlConn) DropScopes(ctx context.Context, scopes []string) error {
	for _, scope := range scopes {
		if err := c.DropScope(ctx, scope); err != nil {
			return err
		}
	}
	return nil
}

func (c *postgresqlConn) DropScope(ctx context.Context, scope string) error {
	if !c.pool.isConfiguredScope(scope) {
		return nil
	}
	_, err := c.conn.ExecContext(ctx, "SELECT set_config($1, '', false)", scope)
	return err
}

func (c *postgresqlConn) DropAllScopes(ctx context.Context) error {
	return c.DropScopes(ctx, c.pool.configuredScopes)
}

func (c *postgresqlConn) Conn() any {
	return c.conn
}

func (c *postgresqlConn) Close(ctx context.Context) {
	if err := c.DropAllScopes(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to clear scopes on conn release")
	}
	if err := c.conn.Close(); err != nil && err != sql.ErrConnDone {
		log.Ctx(ctx).Error().Err(err).Msg("failed to release db connection")
	}
	c.pool.returns.Add(1)
}
