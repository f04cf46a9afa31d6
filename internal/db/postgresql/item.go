package postgresql

import (
	"context"
	"database/sql"

	"github.com/collectorlists/collectorsrv/internal/common"
	"github.com/collectorlists/collectorsrv/internal/db/dberror"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CreateItem inserts a new item. Ownership of the target collection is the
// caller's responsibility.
func (h *collectorDb) CreateItem(ctx context.Context, item *models.Item) error {
	if item.CollectionID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("collection ID must be provided")
	}

	item.ItemID = uuid.New()

	query := `
		INSERT INTO items (id, collection_id, title, notes, cover_image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at;
	`

	row := h.conn().QueryRowContext(ctx, query,
		item.ItemID, item.CollectionID, item.Title, item.Notes, item.CoverImageURL)
	if err := row.Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("title", item.Title).Msg("failed to insert item")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// GetItem retrieves an item whose collection is owned by the user in the
// context. An item in someone else's collection is reported as not found.
func (h *collectorDb) GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	userID := common.UserIdFromContext(ctx)
	if userID.IsNil() {
		log.Ctx(ctx).Error().Msg("user ID is missing from context")
		return nil, dberror.ErrInvalidInput.Msg("user ID is required")
	}
	if itemID == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("item ID must be provided")
	}

	query := `
		SELECT i.id, i.collection_id, i.title, i.notes, i.cover_image_url, i.created_at, i.updated_at
		FROM items i
		JOIN collections c ON c.id = i.collection_id
		WHERE i.id = $1 AND c.owner_id = $2;
	`

	var item models.Item
	row := h.conn().QueryRowContext(ctx, query, itemID, uuid.UUID(userID))
	err := row.Scan(&item.ItemID, &item.CollectionID, &item.Title, &item.Notes,
		&item.CoverImageURL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("item_id", itemID.String()).Msg("item not found")
			return nil, dberror.ErrNotFound.Msg("item not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("item_id", itemID.String()).Msg("failed to retrieve item")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &item, nil
}

// ListItems retrieves a collection's items, newest first.
func (h *collectorDb) ListItems(ctx context.Context, collectionID uuid.UUID) ([]models.Item, error) {
	if collectionID == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("collection ID must be provided")
	}

	query := `
		SELECT id, collection_id, title, notes, cover_image_url, created_at, updated_at
		FROM items
		WHERE collection_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := h.conn().QueryContext(ctx, query, collectionID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list items")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		err := rows.Scan(&item.ItemID, &item.CollectionID, &item.Title, &item.Notes,
			&item.CoverImageURL, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan item row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return items, nil
}

// DeleteItem deletes an item whose collection is owned by the user in the
// context. Values go with it via the FK cascade.
func (h *collectorDb) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID := common.UserIdFromContext(ctx)
	if userID.IsNil() {
		log.Ctx(ctx).Error().Msg("user ID is missing from context")
		return dberror.ErrInvalidInput.Msg("user ID is required")
	}
	if itemID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("item ID must be provided")
	}

	query := `
		DELETE FROM items i
		USING collections c
		WHERE i.id = $1 AND c.id = i.collection_id AND c.owner_id = $2
		RETURNING i.id;
	`

	var deletedID uuid.UUID
	row := h.conn().QueryRowContext(ctx, query, itemID, uuid.UUID(userID))
	err := row.Scan(&deletedID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("item_id", itemID.String()).Msg("item not found for delete")
			return dberror.ErrNotFound.Msg("item not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("item_id", itemID.String()).Msg("failed to delete item")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}
