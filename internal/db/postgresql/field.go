package postgresql

import (
	"context"
	"database/sql"

	"github.com/collectorlists/collectorsrv/internal/db/dberror"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/rs/zerolog/log"
)

// CreateCollectionField inserts a new field into a collection's field
// catalog. field_key must be unique within the collection; the check happens
// here rather than as a database constraint. Ownership of the collection is
// the caller's responsibility.
func (h *collectorDb) CreateCollectionField(ctx context.Context, field *models.CollectionField) error {
	if field.CollectionID == uuid.Nil || field.FieldKey == "" {
		return dberror.ErrInvalidInput.Msg("collection ID and field_key must be provided")
	}

	existsQuery := `
		SELECT 1
		FROM collection_fields
		WHERE collection_id = $1 AND field_key = $2;
	`

	var one int
	err := h.conn().QueryRowContext(ctx, existsQuery, field.CollectionID, field.FieldKey).Scan(&one)
	if err == nil {
		log.Ctx(ctx).Info().Str("field_key", field.FieldKey).Msg("field_key already exists in this collection")
		return dberror.ErrAlreadyExists.Msg("field_key already exists in this collection")
	}
	if err != sql.ErrNoRows {
		log.Ctx(ctx).Error().Err(err).Str("field_key", field.FieldKey).Msg("failed to check field_key uniqueness")
		return dberror.ErrDatabase.Err(err)
	}

	field.FieldID = uuid.New()
	if field.OptionsJson.Status == pgtype.Undefined {
		field.OptionsJson.Status = pgtype.Null
	}

	query := `
		INSERT INTO collection_fields (id, collection_id, field_key, label, data_type, required, sort_order, options_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at;
	`

	row := h.conn().QueryRowContext(ctx, query,
		field.FieldID, field.CollectionID, field.FieldKey, field.Label,
		field.DataType, field.Required, field.SortOrder, field.OptionsJson)
	if err := row.Scan(&field.CreatedAt); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("field_key", field.FieldKey).Msg("failed to insert collection field")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// ListCollectionFields retrieves a collection's field catalog ordered by
// sort_order, ties broken by creation time.
func (h *collectorDb) ListCollectionFields(ctx context.Context, collectionID uuid.UUID) ([]models.CollectionField, error) {
	if collectionID == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("collection ID must be provided")
	}

	query := `
		SELECT id, collection_id, field_key, label, data_type, required, sort_order, options_json, created_at
		FROM collection_fields
		WHERE collection_id = $1
		ORDER BY sort_order ASC, created_at ASC;
	`

	rows, err := h.conn().QueryContext(ctx, query, collectionID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list collection fields")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	fields := []models.CollectionField{}
	for rows.Next() {
		var field models.CollectionField
		err := rows.Scan(&field.FieldID, &field.CollectionID, &field.FieldKey, &field.Label,
			&field.DataType, &field.Required, &field.SortOrder, &field.OptionsJson, &field.CreatedAt)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan collection field row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return fields, nil
}
