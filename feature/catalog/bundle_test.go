package catalog

import (
	"encoding/json"
	"testing"

	"catalog-manager/core/upstream"
	"catalog-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundlesFromResponse(t *testing.T) {
	resp := &upstream.ProcessResponse{
		Items: []json.RawMessage{
			json.RawMessage(`{"product":{"sku":"A"},"brand":{"name":"B"}}`),
			json.RawMessage(`{"product":{"sku":"C"}}`),
		},
	}

	bundles, err := BundlesFromResponse(resp)
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	assert.Equal(t, "A", bundles[0].Product["sku"])
	assert.Equal(t, "B", bundles[0].Brand["name"])
	assert.Nil(t, bundles[1].Brand)
}

func TestBundlesFromResponseBadItem(t *testing.T) {
	resp := &upstream.ProcessResponse{
		Items: []json.RawMessage{json.RawMessage(`"not a bundle"`)},
	}

	_, err := BundlesFromResponse(resp)
	assert.Error(t, err)
}

// Numeric fields arrive as strings or json numbers depending on the source;
// both must land in the typed columns.
func TestApplyProductFieldCoercion(t *testing.T) {
	var p models.Product
	applyProductFields(&p, map[string]any{
		"sku":       "S",
		"weight":    "2.5",
		"is_active": "true",
		"brand_id":  float64(7),
		"dimensions": map[string]any{
			"w": 10,
		},
	})

	assert.Equal(t, "S", p.SKU)
	assert.Equal(t, 2.5, p.Weight)
	assert.True(t, p.IsActive)
	require.NotNil(t, p.BrandID)
	assert.EqualValues(t, 7, *p.BrandID)
	assert.Equal(t, 10, p.Dimensions["w"])
}

func TestApplyVariantFieldsIgnoresProductID(t *testing.T) {
	var v models.ProductVariant
	applyVariantFields(&v, map[string]any{
		"sku":            "V",
		"price":          "10.50",
		"stock_quantity": "4",
		"product_id":     99,
	})

	assert.Equal(t, 10.50, v.Price)
	assert.Equal(t, 4, v.StockQuantity)
	assert.Zero(t, v.ProductID)
}

func TestTagNames(t *testing.T) {
	names, ok := tagNames(map[string]any{"tags": []any{"a", "", "b", 3}})
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "3"}, names)

	_, ok = tagNames(map[string]any{})
	assert.False(t, ok)

	names, ok = tagNames(map[string]any{"tags": "not a list"})
	assert.False(t, ok)
	assert.Nil(t, names)
}

func TestToUintPtr(t *testing.T) {
	assert.Nil(t, toUintPtr(nil))
	assert.Nil(t, toUintPtr(0))
	assert.Nil(t, toUintPtr(-3))

	p := toUintPtr("12")
	require.NotNil(t, p)
	assert.EqualValues(t, 12, *p)
}
