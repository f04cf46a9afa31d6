package apis

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
)

func createItem(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	collectionID, err := collectionIdParam(r)
	if err != nil {
		return nil, err
	}

	var req ItemCreateRequest
	if err := decodeRequest(r, &req); err != nil {
		return nil, err
	}

	collection, err := db.DB(ctx).GetCollection(ctx, collectionID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	item := &models.Item{
		CollectionID:  collection.CollectionID,
		Title:         req.Title,
		Notes:         req.Notes,
		CoverImageURL: req.CoverImageURL,
	}
	if err := db.DB(ctx).CreateItem(ctx, item); err != nil {
		return nil, ToHttpxError(err)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   toItemRsp(item),
	}, nil
}

func listItems(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	collectionID, err := collectionIdParam(r)
	if err != nil {
		return nil, err
	}
	collection, err := db.DB(ctx).GetCollection(ctx, collectionID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	items, err := db.DB(ctx).ListItems(ctx, collection.CollectionID)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	rsp := []ItemRsp{}
	for i := range items {
		rsp = append(rsp, toItemRsp(&items[i]))
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}

func deleteItem(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	itemID, err := itemIdParam(r)
	if err != nil {
		return nil, err
	}
	if err := db.DB(ctx).DeleteItem(ctx, itemID); err != nil {
		return nil, ToHttpxError(err)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]bool{"ok": true},
	}, nil
}
