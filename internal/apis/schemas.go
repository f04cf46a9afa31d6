package apis

import (
	"encoding/json"
	"time"

	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

// Auth

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPairRsp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Collections

type CollectionCreateRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=120"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
	CollectionType string  `json:"collection_type" validate:"omitempty,max=64"`
	IconURL        *string `json:"icon_url" validate:"omitempty,max=1000"`
}

type CollectionRsp struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	CollectionType string    `json:"collection_type"`
	IconURL        *string   `json:"icon_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCollectionRsp(c *models.Collection) CollectionRsp {
	return CollectionRsp{
		ID:             c.CollectionID,
		OwnerID:        c.OwnerID,
		Name:           c.Name,
		Description:    c.Description,
		CollectionType: c.CollectionType,
		IconURL:        c.IconURL,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// Fields

type FieldCreateRequest struct {
	FieldKey    string          `json:"field_key" validate:"required,max=64,fieldKeyFormatValidator"`
	Label       string          `json:"label" validate:"required,min=1,max=120"`
	DataType    string          `json:"data_type" validate:"required,max=32,dataTypeValidator"`
	Required    bool            `json:"required"`
	SortOrder   int             `json:"sort_order"`
	OptionsJson json.RawMessage `json:"options_json"`
}

type FieldRsp struct {
	ID           uuid.UUID       `json:"id"`
	CollectionID uuid.UUID       `json:"collection_id"`
	FieldKey     string          `json:"field_key"`
	Label        string          `json:"label"`
	DataType     string          `json:"data_type"`
	Required     bool            `json:"required"`
	SortOrder    int             `json:"sort_order"`
	OptionsJson  json.RawMessage `json:"options_json"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toFieldRsp(f *models.CollectionField) FieldRsp {
	return FieldRsp{
		ID:           f.FieldID,
		CollectionID: f.CollectionID,
		FieldKey:     f.FieldKey,
		Label:        f.Label,
		DataType:     f.DataType,
		Required:     f.Required,
		SortOrder:    f.SortOrder,
		OptionsJson:  jsonbToRaw(f.OptionsJson),
		CreatedAt:    f.CreatedAt,
	}
}

// Items

type ItemCreateRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=200"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
	CoverImageURL *string `json:"cover_image_url" validate:"omitempty,max=1000"`
}

type ItemRsp struct {
	ID            uuid.UUID `json:"id"`
	CollectionID  uuid.UUID `json:"collection_id"`
	Title         string    `json:"title"`
	Notes         *string   `json:"notes"`
	CoverImageURL *string   `json:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toItemRsp(i *models.Item) ItemRsp {
	return ItemRsp{
		ID:            i.ItemID,
		CollectionID:  i.CollectionID,
		Title:         i.Title,
		Notes:         i.Notes,
		CoverImageURL: i.CoverImageURL,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// Values

type ValueUpsertRequest struct {
	FieldKey string            `json:"field_key" validate:"required,max=64"`
	Value    types.NullableAny `json:"value"`
}

type ValueRsp struct {
	ID        uuid.UUID       `json:"id"`
	ItemID    uuid.UUID       `json:"item_id"`
	FieldID   uuid.UUID       `json:"field_id"`
	FieldKey  string          `json:"field_key"`
	Label     string          `json:"label"`
	DataType  string          `json:"data_type"`
	Value     any             `json:"value"`
	ValueJson json.RawMessage `json:"value_json"`
}

func toValueRsp(v *models.ItemFieldValue, field *models.CollectionField) ValueRsp {
	return ValueRsp{
		ID:        v.ValueID,
		ItemID:    v.ItemID,
		FieldID:   v.FieldID,
		FieldKey:  field.FieldKey,
		Label:     field.Label,
		DataType:  field.DataType,
		Value:     unwrapValue(v.ValueJson),
		ValueJson: jsonbToRaw(v.ValueJson),
	}
}

func toValueDetailRsp(d *models.ItemFieldValueDetail) ValueRsp {
	return ValueRsp{
		ID:        d.ValueID,
		ItemID:    d.ItemID,
		FieldID:   d.FieldID,
		FieldKey:  d.FieldKey,
		Label:     d.Label,
		DataType:  d.DataType,
		Value:     unwrapValue(d.ValueJson),
		ValueJson: jsonbToRaw(d.ValueJson),
	}
}

// jsonbToRaw exposes a JSONB column as raw JSON, null when the column is.
func jsonbToRaw(j pgtype.JSONB) json.RawMessage {
	if j.Status != pgtype.Present || len(j.Bytes) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(j.Bytes)
}

// unwrapValue pulls the payload out of the {"value": ...} wrapper.
func unwrapValue(j pgtype.JSONB) any {
	if j.Status != pgtype.Present {
		return nil
	}
	var wrapper struct {
		Value any `json:"value"`
	}
	if err := json.Unmarshal(j.Bytes, &wrapper); err != nil {
		return nil
	}
	return wrapper.Value
}

// wrapValue builds the {"value": ...} wrapper payload for storage.
func wrapValue(value any) (pgtype.JSONB, error) {
	raw, err := json.Marshal(map[string]any{"value": value})
	if err != nil {
		return pgtype.JSONB{Status: pgtype.Null}, err
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}, nil
}
