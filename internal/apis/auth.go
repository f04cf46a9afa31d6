package apis

import (
	"errors"
	"net/http"

	"github.com/collectorlists/collectorsrv/internal/auth"
	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/collectorlists/collectorsrv/internal/db/dberror"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/pkg/httpx"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/rs/zerolog/log"
)

var tokenIssuer = auth.NewTokenIssuer(&config.Config().Auth)

func register(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to hash password")
		return nil, httpx.ErrApplicationError()
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := db.DB(ctx).CreateUser(ctx, user); err != nil {
		return nil, ToHttpxError(err)
	}

	return tokenPairRsp(types.UserId(user.UserID))
}

func login(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		return nil, err
	}

	// Unknown email and wrong password are deliberately indistinguishable.
	user, err := db.DB(ctx).GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, httpx.ErrUnauthorized("invalid email or password")
		}
		return nil, ToHttpxError(err)
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, httpx.ErrUnauthorized("invalid email or password")
	}

	return tokenPairRsp(types.UserId(user.UserID))
}

func refresh(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req RefreshRequest
	if err := decodeRequest(r, &req); err != nil {
		return nil, err
	}

	claims, err := tokenIssuer.Decode(req.RefreshToken)
	if err != nil {
		return nil, ToHttpxError(err)
	}
	if claims.Type != auth.TokenTypeRefresh {
		return nil, ToHttpxError(auth.ErrWrongTokenType)
	}
	userID, err := claims.UserId()
	if err != nil {
		return nil, ToHttpxError(err)
	}

	// The user may have been deleted since the token was minted.
	user, err := db.DB(ctx).GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, httpx.ErrUnauthorized("user not found")
		}
		return nil, ToHttpxError(err)
	}

	// Refresh tokens are not rotated; the presented token stays valid until
	// its natural expiry.
	return tokenPairRsp(types.UserId(user.UserID))
}

func tokenPairRsp(userID types.UserId) (*httpx.Response, error) {
	accessToken, err := tokenIssuer.IssueAccess(userID)
	if err != nil {
		return nil, httpx.ErrApplicationError()
	}
	refreshToken, err := tokenIssuer.IssueRefresh(userID)
	if err != nil {
		return nil, httpx.ErrApplicationError()
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: TokenPairRsp{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "bearer",
		},
	}, nil
}
