package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/collectorlists/collectorsrv/internal/config"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer(&config.AuthConfig{
		JWTSecret:          "test-secret",
		AccessTokenMinutes: 15,
		RefreshTokenDays:   14,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := testIssuer()
	userID := types.UserId(uuid.New())

	token, err := issuer.IssueAccess(userID)
	require.NoError(t, err)

	claims, err := issuer.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	decoded, err := claims.UserId()
	require.NoError(t, err)
	assert.Equal(t, userID, decoded)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.IssueRefresh(types.UserId(uuid.New()))
	require.NoError(t, err)

	claims, err := issuer.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	token, err := testIssuer().IssueAccess(types.UserId(uuid.New()))
	require.NoError(t, err)

	other := NewTokenIssuer(&config.AuthConfig{
		JWTSecret:          "different-secret",
		AccessTokenMinutes: 15,
		RefreshTokenDays:   14,
	})
	_, err = other.Decode(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestDecodeRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer(&config.AuthConfig{
		JWTSecret:          "test-secret",
		AccessTokenMinutes: 0,
		RefreshTokenDays:   14,
	})
	// expiry == issuance; wait past the instant
	token, err := issuer.IssueAccess(types.UserId(uuid.New()))
	require.NoError(t, err)

	time.Sleep(time.Second + 50*time.Millisecond)
	_, err = issuer.Decode(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := testIssuer().Decode("not.a.token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestClaimsUserIdRejectsBadSubject(t *testing.T) {
	claims := &TokenClaims{}
	_, err := claims.UserId()
	assert.Error(t, err)

	claims.Subject = "not-a-uuid"
	_, err = claims.UserId()
	assert.Error(t, err)
}

func TestPasswordHashVerify(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, VerifyPassword("hunter22", hash))
	assert.False(t, VerifyPassword("hunter23", hash))
	assert.False(t, VerifyPassword("hunter22", "not-a-hash"))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("hunter22")
	require.NoError(t, err)
	h2, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
