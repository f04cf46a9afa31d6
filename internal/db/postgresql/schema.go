package postgresql

import (
	"context"
	_ "embed"

	"github.com/collectorlists/collectorsrv/internal/db/dberror"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaDDL string

// EnsureSchema creates the tables if they do not exist yet. The DDL is
// idempotent, so calling it on every startup is safe.
func (h *collectorDb) EnsureSchema(ctx context.Context) error {
	if _, err := h.conn().ExecContext(ctx, schemaDDL); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to ensure schema")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}
