package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/localnerve/storefront-studio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRoutes(t *testing.T) {
	db, cfg := testutil.NewSQLiteDB(t)
	core, logs := observer.New(zap.InfoLevel)
	app := New(cfg, db, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/config/unknown", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "1.0.0", resp.Header.Get("X-Api-Version"))

	req = httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "go_goroutines")

	assert.GreaterOrEqual(t, logs.FilterMessage("request").Len(), 3)
}

func TestRequireJSON(t *testing.T) {
	db, cfg := testutil.NewSQLiteDB(t)
	app := New(cfg, db, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/collections", strings.NewReader("appId=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "request.contentType", result["type"])
	assert.Equal(t, "Content-Type must be application/json", result["error"])
}

func TestTwoAppsInOneProcess(t *testing.T) {
	db, cfg := testutil.NewSQLiteDB(t)
	assert.NotPanics(t, func() {
		New(cfg, db, nil)
		New(cfg, db, nil)
	})
}

func TestPublishThroughApp(t *testing.T) {
	db, cfg := testutil.NewSQLiteDB(t)
	app := New(cfg, db, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/config",
		bytes.NewReader([]byte(`{"userId":"u9","config":{"name":"Shop"}}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/config/u9", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"name":"Shop"}`, string(body))
}
