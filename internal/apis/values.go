package apis

import (
	"encoding/json"
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
)

// upsertItemValues writes a batch of (field_key, value) pairs for an item.
// The whole batch is validated against the collection's field catalog before
// any row is written; one unknown field_key rejects the entire request.
func upsertItemValues(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	itemID, err := itemIdParam(r)
	if err != nil {
		return nil, err
	}

	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest()
	}
	var entries []ValueUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		return nil, httpx.ErrUnableToReadRequest("unable to parse request")
	}
	for i := range entries {
		if err := V().Struct(&entries[i]); err != nil {
			return nil, httpx.ErrInvalidRequest(err.Error())
		}
	}

	// Ownership is checked through the item's collection.
	item, err := db.DB(ctx).GetItem(ctx, itemID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	fields, err := db.DB(ctx).ListCollectionFields(ctx, item.CollectionID)
	if err != nil {
		return nil, ToHttpxError(err)
	}
	fieldByKey := map[string]*models.CollectionField{}
	for i := range fields {
		fieldByKey[fields[i].FieldKey] = &fields[i]
	}

	values := []models.ItemFieldValue{}
	resolvedFields := []*models.CollectionField{}
	for _, entry := range entries {
		field, ok := fieldByKey[entry.FieldKey]
		if !ok {
			return nil, httpx.ErrInvalidRequest("Unknown field_key: " + entry.FieldKey)
		}
		valueJson, err := wrapValue(entry.Value.Value)
		if err != nil {
			return nil, httpx.ErrInvalidRequest("unable to encode value for field_key: " + entry.FieldKey)
		}
		values = append(values, models.ItemFieldValue{
			FieldID:   field.FieldID,
			ValueJson: valueJson,
		})
		resolvedFields = append(resolvedFields, field)
	}

	results, err := db.DB(ctx).UpsertItemValues(ctx, item.ItemID, values)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	rsp := []ValueRsp{}
	for i := range results {
		rsp = append(rsp, toValueRsp(&results[i], resolvedFields[i]))
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}

func listItemValues(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	itemID, err := itemIdParam(r)
	if err != nil {
		return nil, err
	}
	item, err := db.DB(ctx).GetItem(ctx, itemID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	details, err := db.DB(ctx).ListItemValues(ctx, item.ItemID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	rsp := []ValueRsp{}
	for i := range details {
		rsp = append(rsp, toValueDetailRsp(&details[i]))
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}
