package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog-manager/core/utils"
	"catalog-manager/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes the direct CRUD surface over products. Write operations
// act on the product record alone and never run the reconciler; the caller's
// document is taken as-is, including raw foreign-key ids.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ProductDetail is the fully expanded read model for a single product.
type ProductDetail struct {
	Product    models.Product          `json:"product"`
	Variants   []models.ProductVariant `json:"variants"`
	Media      []models.Media          `json:"media"`
	Attributes []models.Attribute      `json:"attributes"`
	Reviews    []models.Review         `json:"reviews"`
	Pricing    []models.Pricing        `json:"pricing"`
}

// List returns all products with their brand, category, seller, and tags
// expanded.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Seller").
		Preload("Tags").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns one product with every related record expanded. The child
// collections are each filtered to the product's id in a separate lookup;
// expansion is an explicit read-path step, not implicit resolution.
func (s *Service) Get(ctx context.Context, id uint) (*ProductDetail, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Seller").
		Preload("Tags").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	detail := &ProductDetail{
		Product:    product,
		Variants:   []models.ProductVariant{},
		Media:      []models.Media{},
		Attributes: []models.Attribute{},
		Reviews:    []models.Review{},
		Pricing:    []models.Pricing{},
	}

	if err := s.db.WithContext(ctx).Where("product_id = ?", id).Find(&detail.Variants).Error; err != nil {
		return nil, fmt.Errorf("failed to load variants: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("product_id = ?", id).Find(&detail.Media).Error; err != nil {
		return nil, fmt.Errorf("failed to load media: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("product_id = ?", id).Find(&detail.Attributes).Error; err != nil {
		return nil, fmt.Errorf("failed to load attributes: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("product_id = ?", id).Find(&detail.Reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("product_id = ?", id).Find(&detail.Pricing).Error; err != nil {
		return nil, fmt.Errorf("failed to load pricing: %w", err)
	}

	return detail, nil
}

// Create stores a new product from the caller's raw document.
func (s *Service) Create(ctx context.Context, fields map[string]any) (*models.Product, error) {
	product := models.Product{
		Status:   models.StatusDraft,
		IsActive: true,
	}
	applyProductFields(&product, fields)

	if product.SKU == "" {
		return nil, &ValidationError{Message: "product sku is required"}
	}
	if product.Name == "" {
		return nil, &ValidationError{Message: "product name is required"}
	}
	if !models.IsValidStatus(product.Status) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid product status %q", product.Status)}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("sku = ?", product.SKU).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}
	if count > 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("product with sku %q already exists", product.SKU)}
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product created", zap.Uint("product_id", product.ID), zap.String("sku", product.SKU))
	return &product, nil
}

// Update applies a partial document to an existing product. Only submitted
// fields are overwritten.
func (s *Service) Update(ctx context.Context, id uint, fields map[string]any) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	if raw, ok := fields["status"]; ok {
		if status := utils.ToString(raw); !models.IsValidStatus(status) {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid product status %q", status)}
		}
	}
	if raw, ok := fields["sku"]; ok {
		sku := utils.ToString(raw)
		if sku == "" {
			return nil, &ValidationError{Message: "product sku cannot be empty"}
		}
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Product{}).
			Where("sku = ? AND id <> ?", sku, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check sku: %w", err)
		}
		if count > 0 {
			return nil, &ValidationError{Message: fmt.Sprintf("product with sku %q already exists", sku)}
		}
	}

	applyProductFields(&product, fields)
	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info("Product updated", zap.Uint("product_id", product.ID))
	return &product, nil
}

// Delete removes the product record only. Variants, media, attributes, and
// the other child records stay in place; there is no cascade.
func (s *Service) Delete(ctx context.Context, id uint) error {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to load product: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("Product deleted", zap.Uint("product_id", id))
	return nil
}
