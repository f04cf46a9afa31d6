package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/collectorlists/collectorsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

// Response is what request handlers return on success. Location, when set,
// is emitted as the Location header.
type Response struct {
	StatusCode int
	Location   string
	Response   any
}

// Error is a transport-level error carrying the HTTP status code and a
// human-readable detail string. The wire shape is {"detail": "..."}.
type Error struct {
	StatusCode  int
	Description string
}

func (e *Error) Error() string {
	return e.Description
}

func (e *Error) Send(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": e.Description})
}

func newError(statusCode int, defaultMsg string, msg []string) *Error {
	description := defaultMsg
	if len(msg) > 0 && msg[0] != "" {
		description = msg[0]
	}
	return &Error{
		StatusCode:  statusCode,
		Description: description,
	}
}

func ErrInvalidRequest(msg ...string) *Error {
	return newError(http.StatusBadRequest, "invalid request", msg)
}

func ErrUnableToReadRequest(msg ...string) *Error {
	return newError(http.StatusBadRequest, "unable to read request", msg)
}

func ErrUnauthorized(msg ...string) *Error {
	return newError(http.StatusUnauthorized, "unauthorized", msg)
}

func ErrApplicationError(msg ...string) *Error {
	return newError(http.StatusInternalServerError, "internal error", msg)
}

// RequestHandler is the signature shared by all JSON API handlers.
type RequestHandler func(r *http.Request) (*Response, error)

// WrapHttpRsp adapts a RequestHandler to http.HandlerFunc, serializing the
// response and mapping errors to structured JSON error responses.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			SendError(r.Context(), w, err)
			return
		}
		if rsp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if rsp.Location != "" {
			w.Header().Set("Location", rsp.Location)
		}
		if rsp.Response == nil {
			w.WriteHeader(rsp.StatusCode)
			return
		}
		SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response)
	}
}

// SendJsonRsp writes a JSON response with the given status code.
func SendJsonRsp(ctx context.Context, w http.ResponseWriter, statusCode int, rsp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to encode json response")
	}
}

// SendError maps an error to a structured JSON error response.
func SendError(ctx context.Context, w http.ResponseWriter, err error) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		httpErr.Send(w)
		return
	}
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		statusCode := appErr.StatusCode()
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		(&Error{StatusCode: statusCode, Description: appErr.Error()}).Send(w)
		return
	}
	log.Ctx(ctx).Error().Err(err).Msg("unhandled error")
	ErrApplicationError().Send(w)
}
