package auth

import (
	"time"

	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the payload carried by both token kinds. Access and refresh
// tokens share the signing secret; callers distinguish them by Type.
type TokenClaims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

// TokenIssuer mints and verifies the self-contained HS256 tokens used for
// sessions. There is no server-side session state and no revocation; a token
// stays valid until it expires.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(cfg *config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  time.Duration(cfg.AccessTokenMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshTokenDays) * 24 * time.Hour,
	}
}

// IssueAccess mints a short-lived access token for the user.
func (t *TokenIssuer) IssueAccess(userID types.UserId) (string, error) {
	return t.issue(userID, TokenTypeAccess, t.accessTTL)
}

// IssueRefresh mints a longer-lived refresh token for the user.
func (t *TokenIssuer) IssueRefresh(userID types.UserId) (string, error) {
	return t.issue(userID, TokenTypeRefresh, t.refreshTTL)
}

func (t *TokenIssuer) issue(userID types.UserId, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Type: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Decode verifies the signature and expiry and returns the claims. Any
// failure is ErrInvalidToken; the token type is not checked here.
func (t *TokenIssuer) Decode(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserId parses the claims' subject into a user ID. An absent or malformed
// subject fails with ErrInvalidToken.
func (c *TokenClaims) UserId() (types.UserId, error) {
	if c.Subject == "" {
		return types.UserId{}, ErrInvalidToken.Msg("missing token subject")
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return types.UserId{}, ErrInvalidToken.Msg("invalid token subject")
	}
	return types.UserId(id), nil
}
