package catalog

import (
	"encoding/json"
	"fmt"

	"catalog-manager/core/upstream"
	"catalog-manager/core/utils"
	"catalog-manager/feature/catalog/models"

	"gorm.io/datatypes"
)

// Bundle is the loosely structured document accepted for reconciliation.
// Every top-level key is optional; a missing key means "do not touch that
// relation". Sub-documents stay as raw maps so the reconciler can tell a
// field that was submitted from one that was merely absent.
type Bundle struct {
	Product    map[string]any   `json:"product,omitempty"`
	Brand      map[string]any   `json:"brand,omitempty"`
	Category   map[string]any   `json:"category,omitempty"`
	Seller     map[string]any   `json:"seller,omitempty"`
	Variants   []map[string]any `json:"variants,omitempty"`
	Media      []map[string]any `json:"media,omitempty"`
	Attributes []map[string]any `json:"attributes,omitempty"`
}

// BundlesFromResponse decodes the bundles carried by a processing API
// response.
func BundlesFromResponse(resp *upstream.ProcessResponse) ([]Bundle, error) {
	bundles := make([]Bundle, 0, len(resp.Items))
	for i, item := range resp.Items {
		var b Bundle
		if err := json.Unmarshal(item, &b); err != nil {
			return nil, fmt.Errorf("item %d is not a valid bundle: %w", i, err)
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// The apply functions below copy submitted fields onto a model. Only keys
// present in the payload are touched, which is what makes resubmission a
// partial overwrite rather than a reset. Unknown keys are ignored.

func applyBrandFields(b *models.Brand, fields map[string]any) {
	for key, val := range fields {
		switch key {
		case "name":
			b.Name = utils.ToString(val)
		case "slug":
			b.Slug = utils.ToString(val)
		case "logo_url":
			b.LogoURL = utils.ToString(val)
		case "description":
			b.Description = utils.ToString(val)
		}
	}
}

func applyCategoryFields(c *models.Category, fields map[string]any) {
	for key, val := range fields {
		switch key {
		case "name":
			c.Name = utils.ToString(val)
		case "slug":
			c.Slug = utils.ToString(val)
		case "parent_id":
			c.ParentID = toUintPtr(val)
		case "metadata":
			c.Metadata = toJSONMap(val)
		}
	}
}

func applySellerFields(s *models.Seller, fields map[string]any) {
	for key, val := range fields {
		switch key {
		case "name":
			s.Name = utils.ToString(val)
		case "rating":
			s.Rating = utils.ToFloat(val)
		case "is_active":
			s.IsActive = utils.ToBool(val)
		}
	}
}

func applyProductFields(p *models.Product, fields map[string]any) {
	for key, val := range fields {
		switch key {
		case "sku":
			p.SKU = utils.ToString(val)
		case "name":
			p.Name = utils.ToString(val)
		case "slug":
			p.Slug = utils.ToString(val)
		case "description":
			p.Description = utils.ToString(val)
		case "status":
			p.Status = utils.ToString(val)
		case "is_active":
			p.IsActive = utils.ToBool(val)
		case "weight":
			p.Weight = utils.ToFloat(val)
		case "dimensions":
			p.Dimensions = toJSONMap(val)
		case "brand_id":
			p.BrandID = toUintPtr(val)
		case "category_id":
			p.CategoryID = toUintPtr(val)
		case "seller_id":
			p.SellerID = toUintPtr(val)
		}
	}
}

func applyVariantFields(v *models.ProductVariant, fields map[string]any) {
	for key, val := range fields {
		switch key {
		case "sku":
			v.SKU = utils.ToString(val)
		case "name":
			v.Name = utils.ToString(val)
		case "price":
			v.Price = utils.ToFloat(val)
		case "stock_quantity":
			v.StockQuantity = utils.ToInt(val)
		case "attributes":
			v.Attributes = toJSONMap(val)
		}
		// product_id is deliberately not read here; the reconciler always
		// forces it to the parent product.
	}
}

func mediaFromFields(fields map[string]any, productID uint) models.Media {
	m := models.Media{ProductID: productID, Type: "image"}
	for key, val := range fields {
		switch key {
		case "url":
			m.URL = utils.ToString(val)
		case "type":
			m.Type = utils.ToString(val)
		case "alt_text":
			m.AltText = utils.ToString(val)
		case "position":
			m.Position = utils.ToInt(val)
		}
	}
	return m
}

func attributeFromFields(fields map[string]any, productID uint) models.Attribute {
	a := models.Attribute{ProductID: productID, Type: "text"}
	for key, val := range fields {
		switch key {
		case "name":
			a.Name = utils.ToString(val)
		case "value":
			raw, err := json.Marshal(val)
			if err == nil {
				a.Value = datatypes.JSON(raw)
			}
		case "type":
			a.Type = utils.ToString(val)
		}
	}
	return a
}

// tagNames extracts the tag list from a product sub-document.
func tagNames(fields map[string]any) ([]string, bool) {
	raw, ok := fields["tags"]
	if !ok {
		return nil, false
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(list))
	for _, item := range list {
		if name := utils.ToString(item); name != "" {
			names = append(names, name)
		}
	}
	return names, true
}

func toUintPtr(val any) *uint {
	if val == nil {
		return nil
	}
	i := utils.ToInt(val)
	if i <= 0 {
		return nil
	}
	u := uint(i)
	return &u
}

func toJSONMap(val any) datatypes.JSONMap {
	if m, ok := val.(map[string]any); ok {
		return datatypes.JSONMap(m)
	}
	return nil
}
