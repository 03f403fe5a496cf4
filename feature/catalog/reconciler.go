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

// Reconciler converts a product bundle into a consistent set of stored
// records and returns the resulting canonical product.
//
// The steps run sequentially and are not wrapped in a transaction. A failure
// aborts the remaining steps but does not roll back earlier upserts; callers
// see the error and the partially applied state. The unique indexes on the
// natural keys turn a concurrent find-then-create race into a duplicate-key
// error instead of silent duplicates.
type Reconciler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewReconciler creates a reconciler writing through the given connection.
func NewReconciler(db *gorm.DB, logger *zap.Logger) *Reconciler {
	return &Reconciler{db: db, logger: logger}
}

// Reconcile upserts every entity carried by the bundle in dependency order:
// brand, category, and seller first, then the product wired to them, then
// variants, media, and attributes under the product.
func (r *Reconciler) Reconcile(ctx context.Context, bundle Bundle) (*models.Product, error) {
	var brandID, categoryID, sellerID *uint

	if bundle.Brand != nil {
		id, err := r.upsertBrand(ctx, bundle.Brand)
		if err != nil {
			return nil, err
		}
		brandID = &id
	}

	if bundle.Category != nil {
		id, err := r.upsertCategory(ctx, bundle.Category)
		if err != nil {
			return nil, err
		}
		categoryID = &id
	}

	if bundle.Seller != nil {
		id, err := r.upsertSeller(ctx, bundle.Seller)
		if err != nil {
			return nil, err
		}
		sellerID = &id
	}

	product, err := r.upsertProduct(ctx, bundle.Product, brandID, categoryID, sellerID)
	if err != nil {
		return nil, err
	}

	for _, fields := range bundle.Variants {
		if err := r.upsertVariant(ctx, fields, product.ID); err != nil {
			return nil, err
		}
	}

	// Media and attributes are append-only: resubmitting a bundle creates
	// new rows every time.
	for _, fields := range bundle.Media {
		media := mediaFromFields(fields, product.ID)
		if err := r.db.WithContext(ctx).Create(&media).Error; err != nil {
			return nil, fmt.Errorf("failed to create media: %w", err)
		}
	}

	for _, fields := range bundle.Attributes {
		attr := attributeFromFields(fields, product.ID)
		if err := r.db.WithContext(ctx).Create(&attr).Error; err != nil {
			return nil, fmt.Errorf("failed to create attribute: %w", err)
		}
	}

	r.logger.Info("Bundle reconciled",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.Int("variants", len(bundle.Variants)),
		zap.Int("media", len(bundle.Media)),
		zap.Int("attributes", len(bundle.Attributes)),
	)

	return product, nil
}

func (r *Reconciler) upsertBrand(ctx context.Context, fields map[string]any) (uint, error) {
	name := utils.ToString(fields["name"])
	if name == "" {
		return 0, &ValidationError{Message: "brand name is required"}
	}

	var brand models.Brand
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&brand).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		applyBrandFields(&brand, fields)
		if err := r.db.WithContext(ctx).Create(&brand).Error; err != nil {
			return 0, fmt.Errorf("failed to create brand: %w", err)
		}
	case err != nil:
		return 0, fmt.Errorf("failed to look up brand: %w", err)
	default:
		applyBrandFields(&brand, fields)
		if err := r.db.WithContext(ctx).Save(&brand).Error; err != nil {
			return 0, fmt.Errorf("failed to update brand: %w", err)
		}
	}

	return brand.ID, nil
}

func (r *Reconciler) upsertCategory(ctx context.Context, fields map[string]any) (uint, error) {
	name := utils.ToString(fields["name"])
	if name == "" {
		return 0, &ValidationError{Message: "category name is required"}
	}

	var category models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		applyCategoryFields(&category, fields)
		if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
			return 0, fmt.Errorf("failed to create category: %w", err)
		}
	case err != nil:
		return 0, fmt.Errorf("failed to look up category: %w", err)
	default:
		applyCategoryFields(&category, fields)
		if err := r.db.WithContext(ctx).Save(&category).Error; err != nil {
			return 0, fmt.Errorf("failed to update category: %w", err)
		}
	}

	return category.ID, nil
}

func (r *Reconciler) upsertSeller(ctx context.Context, fields map[string]any) (uint, error) {
	name := utils.ToString(fields["name"])
	if name == "" {
		return 0, &ValidationError{Message: "seller name is required"}
	}

	var seller models.Seller
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&seller).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seller.IsActive = true
		applySellerFields(&seller, fields)
		if err := r.db.WithContext(ctx).Create(&seller).Error; err != nil {
			return 0, fmt.Errorf("failed to create seller: %w", err)
		}
	case err != nil:
		return 0, fmt.Errorf("failed to look up seller: %w", err)
	default:
		applySellerFields(&seller, fields)
		if err := r.db.WithContext(ctx).Save(&seller).Error; err != nil {
			return 0, fmt.Errorf("failed to update seller: %w", err)
		}
	}

	return seller.ID, nil
}

// upsertProduct merges the product sub-document with the ids captured from
// the relation upserts. Ids from relations present in the bundle override
// any raw *_id values in the payload; absent relations leave the stored
// references untouched.
func (r *Reconciler) upsertProduct(ctx context.Context, fields map[string]any, brandID, categoryID, sellerID *uint) (*models.Product, error) {
	sku := utils.ToString(fields["sku"])
	if sku == "" {
		return nil, &ValidationError{Message: "product sku is required"}
	}

	var product models.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error
	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		product.Status = models.StatusDraft
		product.IsActive = true
		created = true
	case err != nil:
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	applyProductFields(&product, fields)
	if product.Status != "" && !models.IsValidStatus(product.Status) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid product status %q", product.Status)}
	}
	if brandID != nil {
		product.BrandID = brandID
	}
	if categoryID != nil {
		product.CategoryID = categoryID
	}
	if sellerID != nil {
		product.SellerID = sellerID
	}

	if created {
		if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
	} else {
		if err := r.db.WithContext(ctx).Save(&product).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if names, ok := tagNames(fields); ok {
		if err := r.replaceTags(ctx, &product, names); err != nil {
			return nil, err
		}
	}

	return &product, nil
}

func (r *Reconciler) upsertVariant(ctx context.Context, fields map[string]any, productID uint) error {
	sku := utils.ToString(fields["sku"])
	if sku == "" {
		return &ValidationError{Message: "variant sku is required"}
	}

	var variant models.ProductVariant
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&variant).Error
	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created = true
	case err != nil:
		return fmt.Errorf("failed to look up variant: %w", err)
	}

	applyVariantFields(&variant, fields)
	variant.ProductID = productID

	if created {
		if err := r.db.WithContext(ctx).Create(&variant).Error; err != nil {
			return fmt.Errorf("failed to create variant: %w", err)
		}
		return nil
	}
	if err := r.db.WithContext(ctx).Save(&variant).Error; err != nil {
		return fmt.Errorf("failed to update variant: %w", err)
	}
	return nil
}

// replaceTags resolves tag names to deduplicated Tag rows and replaces the
// product's tag set with them.
func (r *Reconciler) replaceTags(ctx context.Context, product *models.Product, names []string) error {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			if err := r.db.WithContext(ctx).Create(&tag).Error; err != nil {
				return fmt.Errorf("failed to create tag: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to look up tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := r.db.WithContext(ctx).Model(product).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("failed to replace tags: %w", err)
	}
	return nil
}
