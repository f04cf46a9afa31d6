package apis

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/jackc/pgtype"
	"github.com/xeipuuv/gojsonschema"
)

// Select fields carry their options as {"options": [scalar...]}.
var optionsSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"required": ["options"],
	"properties": {
		"options": {
			"type": "array",
			"items": {"type": ["string", "number", "boolean"]}
		}
	}
}`)

func createField(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	collectionID, err := collectionIdParam(r)
	if err != nil {
		return nil, err
	}

	var req FieldCreateRequest
	if err := decodeRequest(r, &req); err != nil {
		return nil, err
	}
	if err := validateOptionsJson(req.DataType, req.OptionsJson); err != nil {
		return nil, err
	}

	// Resolve the collection owner-scoped before touching the field catalog.
	collection, err := db.DB(ctx).GetCollection(ctx, collectionID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	field := &models.CollectionField{
		CollectionID: collection.CollectionID,
		FieldKey:     req.FieldKey,
		Label:        req.Label,
		DataType:     req.DataType,
		Required:     req.Required,
		SortOrder:    req.SortOrder,
		OptionsJson:  rawToJsonb(req.OptionsJson),
	}
	if err := db.DB(ctx).CreateCollectionField(ctx, field); err != nil {
		return nil, ToHttpxError(err)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   toFieldRsp(field),
	}, nil
}

func listFields(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	collectionID, err := collectionIdParam(r)
	if err != nil {
		return nil, err
	}
	collection, err := db.DB(ctx).GetCollection(ctx, collectionID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	fields, err := db.DB(ctx).ListCollectionFields(ctx, collection.CollectionID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	rsp := []FieldRsp{}
	for i := range fields {
		rsp = append(rsp, toFieldRsp(&fields[i]))
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}

// validateOptionsJson enforces the options payload shape for select types.
// Non-select types may carry arbitrary options_json, matching how the column
// is stored.
func validateOptionsJson(dataType string, raw []byte) error {
	if !types.IsSelectDataType(dataType) {
		return nil
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	result, err := gojsonschema.Validate(optionsSchema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return httpx.ErrInvalidRequest("unable to parse options_json")
	}
	if !result.Valid() {
		return httpx.ErrInvalidRequest(`options_json must be {"options": [...]} for select fields`)
	}
	return nil
}

func rawToJsonb(raw []byte) pgtype.JSONB {
	if len(raw) == 0 || string(raw) == "null" {
		return pgtype.JSONB{Status: pgtype.Null}
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}
}
