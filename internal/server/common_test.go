package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/collectorlists/collectorsrv/internal/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func executeTestRequest(t *testing.T, req *http.Request, accessToken string) *httptest.ResponseRecorder {
	s, err := CreateNewServer()
	assert.NoError(t, err, "create new server")

	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	// Mount Handlers
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Request-ID"), "No Request Id")
}

func setRequestBodyAndHeader(t *testing.T, req *http.Request, data any) {
	var jsonData []byte
	if s, ok := data.(string); ok {
		jsonData = []byte(s)
	} else {
		var err error
		jsonData, err = json.Marshal(data)
		assert.NoError(t, err, "Failed to marshal data into JSON")
	}

	// Set the request body to the JSON
	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))

	// Set the Content-Type header to application/json
	req.Header.Set("Content-Type", "application/json")
}

var schemaOnce sync.Once

// requireTestDb skips tests that need a live database and makes sure the
// schema exists before the first one runs.
func requireTestDb(t *testing.T) {
	t.Helper()
	if os.Getenv("COLLECTOR_DB_DSN") == "" {
		t.Skip("COLLECTOR_DB_DSN not set; skipping database-backed test")
	}
	schemaOnce.Do(func() {
		ctx := db.ConnCtx(context.Background())
		d := db.DB(ctx)
		require.NotNil(t, d, "unable to get db connection")
		defer d.Close(ctx)
		require.NoError(t, d.EnsureSchema(ctx), "ensure schema")
	})
}

// registerTestUser registers a fresh user and returns its token pair.
func registerTestUser(t *testing.T) (accessToken, refreshToken string) {
	t.Helper()

	email := "user-" + uuid.NewString() + "@example.com"
	httpReq, _ := http.NewRequest("POST", "/auth/register", nil)
	setRequestBodyAndHeader(t, httpReq, fmt.Sprintf(`{"email": %q, "password": "secret123"}`, email))

	response := executeTestRequest(t, httpReq, "")
	require.Equal(t, http.StatusOK, response.Code, "register: %s", response.Body.String())

	body := response.Body.String()
	accessToken = gjson.Get(body, "access_token").String()
	refreshToken = gjson.Get(body, "refresh_token").String()
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken
}
