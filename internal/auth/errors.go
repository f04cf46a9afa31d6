package auth

import (
	"net/http"

	"github.com/collectorlists/collectorsrv/pkg/apperrors"
)

var (
	ErrAuth           apperrors.Error = apperrors.New("auth error").SetStatusCode(http.StatusUnauthorized)
	ErrInvalidToken   apperrors.Error = ErrAuth.Msg("invalid token")
	ErrWrongTokenType apperrors.Error = ErrAuth.Msg("wrong token type")
)
