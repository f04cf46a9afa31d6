package postgresql

import (
	"context"
	"database/sql"

	"github.com/collectorlists/collectorsrv/internal/db/dbmanager"
)

type collectorDb struct {
	c dbmanager.ScopedConn
}

func NewCollectorDb(conn dbmanager.ScopedConn) *collectorDb {
	return &collectorDb{c: conn}
}

func (h *collectorDb) conn() *sql.Conn {
	return h.c.Conn().(*sql.Conn)
}

func (h *collectorDb) AddScopes(ctx context.Context, scopes map[string]string) {
	h.c.AddScopes(ctx, scopes)
}

func (h *collectorDb) DropScopes(ctx context.Context, scopes []string) error {
	return h.c.DropScopes(ctx, scopes)
}

func (h *collectorDb) AddScope(ctx context.Context, scope, value string) {
	h.c.AddScope(ctx, scope, value)
}

func (h *collectorDb) DropScope(ctx context.Context, scope string) error {
	return h.c.DropScope(ctx, scope)
}

func (h *collectorDb) DropAllScopes(ctx context.Context) error {
	return h.c.DropAllScopes(ctx)
}

func (h *collectorDb) Close(ctx context.Context) {
	h.c.Close(ctx)
}
