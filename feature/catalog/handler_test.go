package catalog_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"catalog-manager/feature/catalog"
	"catalog-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	logger := zap.NewNop()

	svc := catalog.NewService(db, logger)
	r := catalog.NewReconciler(db, logger)
	h := catalog.NewHandler(svc, r, logger)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app, db
}

func TestHandleListProducts(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&models.Product{SKU: "L1", Name: "One"}).Error)
	require.NoError(t, db.Create(&models.Product{SKU: "L2", Name: "Two"}).Error)

	req := httptest.NewRequest("GET", "/api/products/", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Success  bool             `json:"success"`
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Len(t, body.Products, 2)
}

func TestHandleGetProduct(t *testing.T) {
	app, db := newTestApp(t)

	product := models.Product{SKU: "G1", Name: "Desk"}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.ProductVariant{SKU: "G1-A", ProductID: product.ID}).Error)

	req := httptest.NewRequest("GET", "/api/products/1", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Success  bool                    `json:"success"`
		Product  models.Product          `json:"product"`
		Variants []models.ProductVariant `json:"variants"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "G1", body.Product.SKU)
	assert.Len(t, body.Variants, 1)
}

func TestHandleGetProductNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/products/999", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleGetProductBadID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/products/abc", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleCreateProduct(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{"sku": "C1", "name": "Chair"})
	req := httptest.NewRequest("POST", "/api/products/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestHandleCreateProductValidation(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{"name": "no sku"})
	req := httptest.NewRequest("POST", "/api/products/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "error")
}

func TestHandleUpdateProduct(t *testing.T) {
	app, db := newTestApp(t)

	product := models.Product{SKU: "U1", Name: "Before"}
	require.NoError(t, db.Create(&product).Error)

	payload, _ := json.Marshal(map[string]any{"name": "After"})
	req := httptest.NewRequest("PUT", "/api/products/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, "After", stored.Name)
}

func TestHandleUpdateProductNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{"name": "X"})
	req := httptest.NewRequest("PUT", "/api/products/999", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDeleteProduct(t *testing.T) {
	app, db := newTestApp(t)

	product := models.Product{SKU: "D1", Name: "Doomed"}
	require.NoError(t, db.Create(&product).Error)

	req := httptest.NewRequest("DELETE", "/api/products/1", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/products/1", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleManualBundle(t *testing.T) {
	app, db := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{
		"product": map[string]any{"sku": "M1", "name": "Manual"},
		"brand":   map[string]any{"name": "Acme"},
		"variants": []map[string]any{
			{"sku": "M1-A", "price": 5},
		},
	})
	req := httptest.NewRequest("POST", "/api/products/manual", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	db.Model(&models.Brand{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.ProductVariant{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestHandleManualBundleValidation(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{
		"product": map[string]any{"name": "no sku"},
	})
	req := httptest.NewRequest("POST", "/api/products/manual", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
