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

// CreateCollection inserts a new collection owned by the user in the context.
func (h *collectorDb) CreateCollection(ctx context.Context, collection *models.Collection) error {
	collection.CollectionID = uuid.New()

	// Retrieve the owner from context
	userID := common.UserIdFromContext(ctx)
	if userID.IsNil() {
		log.Ctx(ctx).Error().Msg("user ID is missing from context")
		return dberror.ErrInvalidInput.Msg("user ID is required")
	}
	collection.OwnerID = uuid.UUID(userID)

	if collection.CollectionType == "" {
		collection.CollectionType = "custom"
	}

	query := `
		INSERT INTO collections (id, owner_id, name, description, collection_type, icon_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at;
	`

	row := h.conn().QueryRowContext(ctx, query,
		collection.CollectionID, collection.OwnerID, collection.Name,
		collection.Description, collection.CollectionType, collection.IconURL)
	err := row.Scan(&collection.CreatedAt, &collection.UpdatedAt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("name", collection.Name).Msg("failed to insert collection")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// GetCollection retrieves a collection owned by the user in the context.
// A collection owned by someone else is reported as not found.
func (h *collectorDb) GetCollection(ctx context.Context, collectionID uuid.UUID) (*models.Collection, error) {
	userID := common.UserIdFromContext(ctx)
	if userID.IsNil() {
		log.Ctx(ctx).Error().Msg("user ID is missing from context")
		return nil, dberror.ErrInvalidInput.Msg("user ID is required")
	}
	if collectionID == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("collection ID must be provided")
	}

	query := `
		SELECT id, owner_id, name, description, collection_type, icon_url, created_at, updated_at
		FROM collections
		WHERE id = $1 AND owner_id = $2;
	`

	var collection models.Collection
	row := h.conn().QueryRowContext(ctx, query, collectionID, uuid.UUID(userID))
	err := row.Scan(&collection.CollectionID, &collection.OwnerID, &collection.Name,
		&collection.Description, &collection.CollectionType, &collection.IconURL,
		&collection.CreatedAt, &collection.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("collection_id", collectionID.String()).Msg("collection not found")
			return nil, dberror.ErrNotFound.Msg("collection not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("collection_id", collectionID.String()).Msg("failed to retrieve collection")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &collection, nil
}

// ListCollections retrieves the collections owned by the user in the context,
// newest first.
func (h *collectorDb) ListCollections(ctx context.Context) ([]models.Collection, error) {
	userID := common.UserIdFromContext(ctx)
	if userID.IsNil() {
		log.Ctx(ctx).Error().Msg("user ID is missing from context")
		return nil, dberror.ErrInvalidInput.Msg("user ID is required")
	}

	query := `
		SELECT id, owner_id, name, description, collection_type, icon_url, created_at, updated_at
		FROM collections
		WHERE owner_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := h.conn().QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list collections")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		var collection models.Collection
		err := rows.Scan(&collection.CollectionID, &collection.OwnerID, &collection.Name,
			&collection.Description, &collection.CollectionType, &collection.IconURL,
			&collection.CreatedAt, &collection.UpdatedAt)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan collection row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		collections = append(collections, collection)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return collections, nil
}

// DeleteCollection deletes a collection owned by the user in the context.
// Fields, items and values go with it via the FK cascade chain.
func (h *collectorDb) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	userID := common.UserIdFromContext(ctx)
	if userID.IsNil() {
		log.Ctx(ctx).Error().Msg("user ID is missing from context")
		return dberror.ErrInvalidInput.Msg("user ID is required")
	}
	if collectionID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("collection ID must be provided")
	}

	query := `
		DELETE FROM collections
		WHERE id = $1 AND owner_id = $2
		RETURNING id;
	`

	var deletedID uuid.UUID
	row := h.conn().QueryRowContext(ctx, query, collectionID, uuid.UUID(userID))
	err := row.Scan(&deletedID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("collection_id", collectionID.String()).Msg("collection not found for delete")
			return dberror.ErrNotFound.Msg("collection not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("collection_id", collectionID.String()).Msg("failed to delete collection")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}
