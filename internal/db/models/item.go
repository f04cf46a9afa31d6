package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

// Item model definition
type Item struct {
	ItemID        uuid.UUID `db:"id"`
	CollectionID  uuid.UUID `db:"collection_id"`
	Title         string    `db:"title"`
	Notes         *string   `db:"notes"`
	CoverImageURL *string   `db:"cover_image_url"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ItemFieldValue stores one field's payload for an item. ValueJson is the
// {"value": <any>} wrapper so heterogeneous payloads share one JSONB column.
type ItemFieldValue struct {
	ValueID   uuid.UUID    `db:"id"`
	ItemID    uuid.UUID    `db:"item_id"`
	FieldID   uuid.UUID    `db:"field_id"`
	ValueJson pgtype.JSONB `db:"value_json"`
}

// ItemFieldValueDetail is a value row joined with its field's metadata.
type ItemFieldValueDetail struct {
	ItemFieldValue
	FieldKey string `db:"field_key"`
	Label    string `db:"label"`
	DataType string `db:"data_type"`
}
