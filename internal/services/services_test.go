package services_test

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/storefront-studio/internal/models"
	"github.com/localnerve/storefront-studio/internal/services"
	"github.com/localnerve/storefront-studio/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigUpsertLastWriteWins(t *testing.T) {
	db, _ := testutil.NewSQLiteDB(t)

	_, err := services.GetConfig(db, "u1")
	assert.ErrorIs(t, err, services.ErrNotFound)

	v, err := services.UpsertConfig(db, "u1", json.RawMessage(`{"name":"First"}`))
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	v, err = services.UpsertConfig(db, "u1", json.RawMessage(`{"name":"Second"}`))
	require.NoError(t, err)
	assert.EqualValues(t, 2, v)

	got, err := services.GetConfig(db, "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Second"}`, string(got))

	var count int64
	require.NoError(t, db.Model(&models.StoreConfig{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConfigUpsertRejectsNonObject(t *testing.T) {
	db, _ := testutil.NewSQLiteDB(t)

	for _, body := range []string{`[]`, `"x"`, `null`, `{bad`} {
		_, err := services.UpsertConfig(db, "u1", json.RawMessage(body))
		assert.ErrorIs(t, err, services.ErrInvalidInput, body)
	}
	_, err := services.UpsertConfig(db, " ", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestCatalogCreate(t *testing.T) {
	db, _ := testutil.NewSQLiteDB(t)

	coll, err := services.CreateCollection(db, "LK_U1", "<b>Bags</b>")
	require.NoError(t, err)
	assert.Len(t, coll.CollectionID, 36)
	assert.Equal(t, "Bags", coll.Name)

	prod, err := services.CreateProduct(db, services.ProductInput{
		CollectionID: coll.CollectionID,
		Name:         "Tote",
		Price:        decimal.RequireFromString("1299.999"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, prod.ProductID)
	assert.NotEqual(t, coll.CollectionID, prod.ProductID)

	var stored models.CatalogProduct
	require.NoError(t, db.First(&stored, "product_id = ?", prod.ProductID).Error)
	assert.True(t, decimal.RequireFromString("1300").Equal(stored.Price))

	_, err = services.CreateProduct(db, services.ProductInput{CollectionID: "missing", Name: "Tote"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = services.CreateProduct(db, services.ProductInput{CollectionID: coll.CollectionID, Name: "  "})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = services.CreateCollection(db, "LK_U1", "<script></script>")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestHealthCheckSQLite(t *testing.T) {
	db, cfg := testutil.NewSQLiteDB(t)

	result := services.HealthCheck(cfg, db, nil)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "sqlite", result.Details["database_type"])
}

func TestHealthCheckUnreachableHost(t *testing.T) {
	db, cfg := testutil.NewSQLiteDB(t)
	cfg.DBType = "mysql"
	cfg.DBHost = "127.0.0.1"
	cfg.DBPort = "1"

	result := services.HealthCheck(cfg, db, nil)
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Database)
	assert.NotEmpty(t, result.ErrorMessage)
}
