package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/localnerve/storefront-studio/internal/editor"
	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ editor.IDAllocator = (*Client)(nil)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func TestFetchConfig(t *testing.T) {
	stored := storefront.NewDefault("user-9")
	stored.Name = "Stored Shop"

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config/user-9", r.URL.Path)
		data, _ := storefront.Marshal(stored)
		_, _ = w.Write(data)
	})

	doc, err := c.FetchConfig(context.Background(), "user-9")
	require.NoError(t, err)
	assert.Equal(t, stored.Clone(), doc)
}

func TestFetchConfigNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Config not found"}`))
	})
	_, err := c.FetchConfig(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchConfigMalformedDegrades(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": 42, "layout": "wide"}`))
	}))
	defer srv.Close()
	c := New(srv.URL, WithLogger(zap.New(core)))

	doc, err := c.FetchConfig(context.Background(), "abcd1")
	require.NoError(t, err)
	assert.Equal(t, storefront.DefaultName, doc.Name)
	assert.Equal(t, "LK_ABCD", doc.ID)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "stored config degraded to defaults", logs.All()[0].Message)
}

func TestPublishConfigSnapshotsDocument(t *testing.T) {
	var got struct {
		UserID string          `json:"userId"`
		Config json.RawMessage `json:"config"`
	}
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/config", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"newVersion":3}`))
	})

	doc := storefront.NewDefault("u-1")
	version, err := c.PublishConfig(context.Background(), doc)
	require.NoError(t, err)
	assert.EqualValues(t, 3, version)
	assert.Equal(t, "u-1", got.UserID)

	sent, degraded := storefront.Unmarshal(got.Config, "x")
	assert.Empty(t, degraded)
	assert.Equal(t, doc.Clone(), sent)
}

func TestCreateCollectionAndProduct(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		switch r.URL.Path {
		case "/api/collections":
			assert.Equal(t, "LK_U1", body["appId"])
			_, _ = w.Write([]byte(`{"id":"coll-1"}`))
		case "/api/products":
			assert.Equal(t, 1299.99, body["price"])
			assert.Equal(t, "coll-1", body["collectionId"])
			_, _ = w.Write([]byte(`{"id":77}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	id, err := c.CreateCollection(context.Background(), "LK_U1", "Bags")
	require.NoError(t, err)
	assert.Equal(t, "coll-1", id)

	id, err = c.CreateProduct(context.Background(), "coll-1", storefront.Product{Name: "Tote", Price: "$1299.99"})
	require.NoError(t, err)
	assert.Equal(t, "77", id)
}

func TestRemoteErrors(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream down`))
		}
	})

	_, err := c.Login(context.Background(), "a@b.c", "nope")
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusUnauthorized, remote.Status)
	assert.Equal(t, "Invalid credentials", remote.Message)

	_, err = c.Signup(context.Background(), "A", "a@b.c", "pw")
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, GenericErrorMessage, remote.Message)
}

func TestLoginDecodesUser(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 12, "name": "Ada", "email": "ada@example.com"}`))
	})
	u, err := c.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "12", u.ID.String())
	assert.Equal(t, "Ada", u.Name)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL)
	_, err := c.CreateCollection(context.Background(), "LK_X", "Bags")
	require.Error(t, err)
	var remote *RemoteError
	assert.False(t, errors.As(err, &remote))
}
