package postgresql

import (
	"context"
	"database/sql"

	"github.com/collectorlists/collectorsrv/internal/db/dberror"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// UpsertItemValues writes a batch of field values for an item in one
// transaction. Each entry carries a resolved field ID and the wrapped
// payload; an existing (item, field) row is overwritten, otherwise a new row
// is inserted. The one-row-per-(item, field) invariant is maintained here,
// not by a database constraint. Ownership of the item is the caller's
// responsibility.
func (h *collectorDb) UpsertItemValues(ctx context.Context, itemID uuid.UUID, values []models.ItemFieldValue) ([]models.ItemFieldValue, error) {
	if itemID == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("item ID must be provided")
	}

	tx, err := h.conn().BeginTx(ctx, nil)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to begin value upsert transaction")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE item_field_values
		SET value_json = $3
		WHERE item_id = $1 AND field_id = $2
		RETURNING id;
	`
	insertQuery := `
		INSERT INTO item_field_values (id, item_id, field_id, value_json)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	results := []models.ItemFieldValue{}
	for _, value := range values {
		value.ItemID = itemID

		err := tx.QueryRowContext(ctx, updateQuery, itemID, value.FieldID, value.ValueJson).Scan(&value.ValueID)
		if err == sql.ErrNoRows {
			newID := uuid.New()
			err = tx.QueryRowContext(ctx, insertQuery, newID, itemID, value.FieldID, value.ValueJson).Scan(&value.ValueID)
		}
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("field_id", value.FieldID.String()).Msg("failed to upsert item value")
			return nil, dberror.ErrDatabase.Err(err)
		}

		results = append(results, value)
	}

	if err := tx.Commit(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to commit value upsert transaction")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return results, nil
}

// ListItemValues retrieves an item's values joined with the field catalog
// metadata, ordered like the field list. Ownership of the item is the
// caller's responsibility.
func (h *collectorDb) ListItemValues(ctx context.Context, itemID uuid.UUID) ([]models.ItemFieldValueDetail, error) {
	if itemID == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("item ID must be provided")
	}

	query := `
		SELECT v.id, v.item_id, v.field_id, v.value_json, f.field_key, f.label, f.data_type
		FROM item_field_values v
		JOIN collection_fields f ON f.id = v.field_id
		WHERE v.item_id = $1
		ORDER BY f.sort_order ASC, f.created_at ASC;
	`

	rows, err := h.conn().QueryContext(ctx, query, itemID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list item values")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	details := []models.ItemFieldValueDetail{}
	for rows.Next() {
		var detail models.ItemFieldValueDetail
		err := rows.Scan(&detail.ValueID, &detail.ItemID, &detail.FieldID, &detail.ValueJson,
			&detail.FieldKey, &detail.Label, &detail.DataType)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan item value row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return details, nil
}
