package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

// Collection model definition
type Collection struct {
	CollectionID   uuid.UUID `db:"id"`
	OwnerID        uuid.UUID `db:"owner_id"`
	Name           string    `db:"name"`
	Description    *string   `db:"description"`
	CollectionType string    `db:"collection_type"`
	IconURL        *string   `db:"icon_url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// CollectionField is one entry in a collection's field catalog. OptionsJson
// holds the select-type options payload, e.g. {"options": ["PS5", "PC"]}.
type CollectionField struct {
	FieldID      uuid.UUID    `db:"id"`
	CollectionID uuid.UUID    `db:"collection_id"`
	FieldKey     string       `db:"field_key"`
	Label        string       `db:"label"`
	DataType     string       `db:"data_type"`
	Required     bool         `db:"required"`
	SortOrder    int          `db:"sort_order"`
	OptionsJson  pgtype.JSONB `db:"options_json"`
	CreatedAt    time.Time    `db:"created_at"`
}
