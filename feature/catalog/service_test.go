package catalog_test

import (
	"context"
	"errors"
	"testing"

	"catalog-manager/feature/catalog"
	"catalog-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestServiceGetExpandsChildren(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	brand := models.Brand{Name: "Acme"}
	require.NoError(t, db.Create(&brand).Error)
	product := models.Product{SKU: "S1", Name: "Desk", Status: models.StatusActive, BrandID: &brand.ID}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.ProductVariant{SKU: "S1-A", ProductID: product.ID, Price: 10}).Error)
	require.NoError(t, db.Create(&models.ProductVariant{SKU: "S1-B", ProductID: product.ID, Price: 20}).Error)
	require.NoError(t, db.Create(&models.Media{URL: "https://cdn.example.com/a.jpg", ProductID: product.ID}).Error)
	require.NoError(t, db.Create(&models.Review{ProductID: product.ID, Author: "jo", Rating: 5}).Error)

	detail, err := svc.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1", detail.Product.SKU)
	require.NotNil(t, detail.Product.Brand)
	assert.Equal(t, "Acme", detail.Product.Brand.Name)
	assert.Len(t, detail.Variants, 2)
	assert.Len(t, detail.Media, 1)
	assert.Len(t, detail.Reviews, 1)

	// Collections without rows come back empty, not nil.
	assert.NotNil(t, detail.Attributes)
	assert.Empty(t, detail.Attributes)
	assert.NotNil(t, detail.Pricing)
	assert.Empty(t, detail.Pricing)
}

func TestServiceGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	_, err := svc.Get(context.Background(), 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestServiceCreate(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	product, err := svc.Create(context.Background(), map[string]any{
		"sku":  "C1",
		"name": "Chair",
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, models.StatusDraft, product.Status)
	assert.True(t, product.IsActive)
}

func TestServiceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	_, err := svc.Create(context.Background(), map[string]any{"name": "no sku"})
	assert.True(t, catalog.IsValidation(err))

	_, err = svc.Create(context.Background(), map[string]any{"sku": "C2"})
	assert.True(t, catalog.IsValidation(err))

	_, err = svc.Create(context.Background(), map[string]any{"sku": "C3", "name": "X", "status": "bogus"})
	assert.True(t, catalog.IsValidation(err))
}

func TestServiceCreateDuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	_, err := svc.Create(context.Background(), map[string]any{"sku": "DUP", "name": "First"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), map[string]any{"sku": "DUP", "name": "Second"})
	assert.True(t, catalog.IsValidation(err))
}

func TestServiceUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	created, err := svc.Create(context.Background(), map[string]any{
		"sku":         "U1",
		"name":        "Before",
		"description": "keep me",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"name":   "After",
		"status": models.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, models.StatusActive, updated.Status)
}

func TestServiceUpdateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	first, err := svc.Create(context.Background(), map[string]any{"sku": "U2", "name": "First"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), map[string]any{"sku": "U3", "name": "Second"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, map[string]any{"sku": first.SKU})
	assert.True(t, catalog.IsValidation(err))

	_, err = svc.Update(context.Background(), second.ID, map[string]any{"status": "bogus"})
	assert.True(t, catalog.IsValidation(err))

	// Re-submitting the product's own sku is allowed.
	_, err = svc.Update(context.Background(), second.ID, map[string]any{"sku": second.SKU})
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), 999, map[string]any{"name": "X"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestServiceDeleteLeavesChildren(t *testing.T) {
	db := newTestDB(t)
	svc := catalog.NewService(db, zap.NewNop())

	product := models.Product{SKU: "D1", Name: "Doomed"}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.ProductVariant{SKU: "D1-A", ProductID: product.ID}).Error)
	require.NoError(t, db.Create(&models.Media{URL: "https://cdn.example.com/d.jpg", ProductID: product.ID}).Error)

	require.NoError(t, svc.Delete(context.Background(), product.ID))

	var count int64
	db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	// Child records are not cascaded.
	db.Model(&models.ProductVariant{}).Where("product_id = ?", product.ID).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Media{}).Where("product_id = ?", product.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	assert.True(t, errors.Is(svc.Delete(context.Background(), product.ID), gorm.ErrRecordNotFound))
}
