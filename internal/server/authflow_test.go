package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	requireTestDb(t)

	email := "dup-" + uuid.NewString() + "@example.com"
	body := fmt.Sprintf(`{"email": %q, "password": "secret123"}`, email)

	httpReq, _ := http.NewRequest("POST", "/auth/register", nil)
	setRequestBodyAndHeader(t, httpReq, body)
	response := executeTestRequest(t, httpReq, "")
	require.Equal(t, http.StatusOK, response.Code, response.Body.String())
	checkHeader(t, response.Header())
	assert.Equal(t, "bearer", gjson.Get(response.Body.String(), "token_type").String())

	// Same email again
	httpReq, _ = http.NewRequest("POST", "/auth/register", nil)
	setRequestBodyAndHeader(t, httpReq, body)
	response = executeTestRequest(t, httpReq, "")
	assert.Equal(t, http.StatusConflict, response.Code)
	assert.Equal(t, "email already registered", gjson.Get(response.Body.String(), "detail").String())
}

func TestLogin(t *testing.T) {
	requireTestDb(t)

	email := "login-" + uuid.NewString() + "@example.com"
	httpReq, _ := http.NewRequest("POST", "/auth/register", nil)
	setRequestBodyAndHeader(t, httpReq, fmt.Sprintf(`{"email": %q, "password": "secret123"}`, email))
	response := executeTestRequest(t, httpReq, "")
	require.Equal(t, http.StatusOK, response.Code, response.Body.String())

	httpReq, _ = http.NewRequest("POST", "/auth/login", nil)
	setRequestBodyAndHeader(t, httpReq, fmt.Sprintf(`{"email": %q, "password": "secret123"}`, email))
	response = executeTestRequest(t, httpReq, "")
	assert.Equal(t, http.StatusOK, response.Code, response.Body.String())
	assert.NotEmpty(t, gjson.Get(response.Body.String(), "access_token").String())
	assert.NotEmpty(t, gjson.Get(response.Body.String(), "refresh_token").String())

	// Wrong password and unknown email produce the same response
	httpReq, _ = http.NewRequest("POST", "/auth/login", nil)
	setRequestBodyAndHeader(t, httpReq, fmt.Sprintf(`{"email": %q, "password": "wrongpass"}`, email))
	response = executeTestRequest(t, httpReq, "")
	assert.Equal(t, http.StatusUnauthorized, response.Code)
	assert.Equal(t, "invalid email or password", gjson.Get(response.Body.String(), "detail").String())

	httpReq, _ = http.NewRequest("POST", "/auth/login", nil)
	setRequestBodyAndHeader(t, httpReq, `{"email": "nobody@example.com", "password": "secret123"}`)
	response = executeTestRequest(t, httpReq, "")
	assert.Equal(t, http.StatusUnauthorized, response.Code)
	assert.Equal(t, "invalid email or password", gjson.Get(response.Body.String(), "detail").String())
}

func TestRefresh(t *testing.T) {
	requireTestDb(t)

	accessToken, refreshToken := registerTestUser(t)

	httpReq, _ := http.NewRequest("POST", "/auth/refresh", nil)
	setRequestBodyAndHeader(t, httpReq, fmt.Sprintf(`{"refresh_token": %q}`, refreshToken))
	response := executeTestRequest(t, httpReq, "")
	assert.Equal(t, http.StatusOK, response.Code, response.Body.String())
	assert.NotEmpty(t, gjson.Get(response.Body.String(), "access_token").String())

	// An access token is not a refresh token
	httpReq, _ = http.NewRequest("POST", "/auth/refresh", nil)
	setRequestBodyAndHeader(t, httpReq, fmt.Sprintf(`{"refresh_token": %q}`, accessToken))
	response = executeTestRequest(t, httpReq, "")
	assert.Equal(t, http.StatusUnauthorized, response.Code)
	assert.Equal(t, "wrong token type", gjson.Get(response.Body.String(), "detail").String())
}

func TestProtectedRouteTokens(t *testing.T) {
	requireTestDb(t)

	accessToken, refreshToken := registerTestUser(t)

	httpReq, _ := http.NewRequest("GET", "/collections", nil)
	response := executeTestRequest(t, httpReq, "")
	assert.Equal(t, http.StatusUnauthorized, response.Code)
	assert.Equal(t, "missing bearer token", gjson.Get(response.Body.String(), "detail").String())

	// A refresh token does not grant resource access
	httpReq, _ = http.NewRequest("GET", "/collections", nil)
	response = executeTestRequest(t, httpReq, refreshToken)
	assert.Equal(t, http.StatusUnauthorized, response.Code)
	assert.Equal(t, "wrong token type", gjson.Get(response.Body.String(), "detail").String())

	httpReq, _ = http.NewRequest("GET", "/collections", nil)
	response = executeTestRequest(t, httpReq, accessToken)
	assert.Equal(t, http.StatusOK, response.Code, response.Body.String())
}
