package apis

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func createCollection(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req CollectionCreateRequest
	if err := decodeRequest(r, &req); err != nil {
		return nil, err
	}

	collectionType := req.CollectionType
	if collectionType == "" {
		collectionType = types.DefaultCollectionType
	}

	collection := &models.Collection{
		Name:           req.Name,
		Description:    req.Description,
		CollectionType: collectionType,
		IconURL:        req.IconURL,
	}
	if err := db.DB(ctx).CreateCollection(ctx, collection); err != nil {
		return nil, ToHttpxError(err)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/collections/" + collection.CollectionID.String(),
		Response:   toCollectionRsp(collection),
	}, nil
}

func listCollections(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	collections, err := db.DB(ctx).ListCollections(ctx)
	if err != nil {
		return nil, ToHttpxError(err)
	}

	rsp := []CollectionRsp{}
	for i := range collections {
		rsp = append(rsp, toCollectionRsp(&collections[i]))
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}

func deleteCollection(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	collectionID, err := collectionIdParam(r)
	if err != nil {
		return nil, err
	}
	if err := db.DB(ctx).DeleteCollection(ctx, collectionID); err != nil {
		return nil, ToHttpxError(err)
	}

	return &httpx.Response{
		StatusCode: http.StatusNoContent,
	}, nil
}

func collectionIdParam(r *http.Request) (uuid.UUID, error) {
	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionId"))
	if err != nil {
		return uuid.Nil, httpx.ErrInvalidRequest("invalid collection id")
	}
	return collectionID, nil
}

func itemIdParam(r *http.Request) (uuid.UUID, error) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		return uuid.Nil, httpx.ErrInvalidRequest("invalid item id")
	}
	return itemID, nil
}
