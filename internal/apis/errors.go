package apis

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/collectorlists/collectorsrv/pkg/apperrors"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
)

func ToHttpxError(err error) error {
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		statusCode := appErr.StatusCode()
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		return &httpx.Error{
			StatusCode:  statusCode,
			Description: appErr.Error(),
		}
	}
	return err
}

// decodeRequest reads the JSON body into dst and runs the schema validation.
func decodeRequest(r *http.Request, dst any) error {
	if r.Body == nil {
		return httpx.ErrInvalidRequest()
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return httpx.ErrUnableToReadRequest("unable to parse request")
	}
	if err := V().Struct(dst); err != nil {
		return httpx.ErrInvalidRequest(err.Error())
	}
	return nil
}
