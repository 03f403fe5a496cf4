package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Brand is deduplicated by Name during reconciliation.
type Brand struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:191;uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"size:191" json:"slug"`
	LogoURL     string    `gorm:"size:512" json:"logo_url"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category is deduplicated by Name. ParentID allows nesting; it is optional
// and self-referential.
type Category struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:191;uniqueIndex;not null" json:"name"`
	Slug      string            `gorm:"size:191" json:"slug"`
	ParentID  *uint             `gorm:"index" json:"parent_id"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Seller is deduplicated by Name.
type Seller struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:191;uniqueIndex;not null" json:"name"`
	Rating    float64   `json:"rating"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tag is deduplicated by Name and attached to products as a set.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:191;uniqueIndex;not null" json:"name"`
}

// Product statuses accepted by the catalog.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

// IsValidStatus checks whether s is one of the accepted product statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	default:
		return false
	}
}

// Product is the canonical catalog record, deduplicated by SKU. The brand,
// category, and seller references are nullable; a bundle without those
// relations leaves them unset.
type Product struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	SKU         string            `gorm:"size:191;uniqueIndex;not null" json:"sku"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	Slug        string            `gorm:"size:255" json:"slug"`
	Description string            `gorm:"type:text" json:"description"`
	Status      string            `gorm:"size:32;default:draft" json:"status"`
	IsActive    bool              `gorm:"default:true" json:"is_active"`
	Weight      float64           `json:"weight"`
	Dimensions  datatypes.JSONMap `json:"dimensions"`
	BrandID     *uint             `gorm:"index" json:"brand_id"`
	CategoryID  *uint             `gorm:"index" json:"category_id"`
	SellerID    *uint             `gorm:"index" json:"seller_id"`
	Brand       *Brand            `json:"brand,omitempty"`
	Category    *Category         `json:"category,omitempty"`
	Seller      *Seller           `json:"seller,omitempty"`
	Tags        []Tag             `gorm:"many2many:product_tags" json:"tags"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductVariant is deduplicated by SKU and always belongs to a product.
type ProductVariant struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	SKU           string            `gorm:"size:191;uniqueIndex;not null" json:"sku"`
	Name          string            `gorm:"size:255" json:"name"`
	Price         float64           `json:"price"`
	StockQuantity int               `json:"stock_quantity"`
	Attributes    datatypes.JSONMap `json:"attributes"`
	ProductID     uint              `gorm:"index;not null" json:"product_id"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Media is append-only: reconciliation never deduplicates media entries.
type Media struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	Type      string    `gorm:"size:32;default:image" json:"type"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	Position  int       `json:"position"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Attribute is append-only, like Media. Value is schema-less.
type Attribute struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:191;not null" json:"name"`
	Value     datatypes.JSON `json:"value"`
	Type      string         `gorm:"size:32;default:text" json:"type"`
	ProductID uint           `gorm:"index;not null" json:"product_id"`
	CreatedAt time.Time      `json:"created_at"`
}

// Inventory tracks stock per product or variant. It is written by the
// direct CRUD surface only, never by the reconciler.
type Inventory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	VariantID *uint     `gorm:"index" json:"variant_id"`
	Quantity  int       `json:"quantity"`
	Reserved  int       `json:"reserved"`
	Location  string    `gorm:"size:191" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pricing carries list and sale prices per product or variant.
type Pricing struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProductID uint       `gorm:"index;not null" json:"product_id"`
	VariantID *uint      `gorm:"index" json:"variant_id"`
	Currency  string     `gorm:"size:8;default:USD" json:"currency"`
	ListPrice float64    `json:"list_price"`
	SalePrice float64    `json:"sale_price"`
	ValidFrom *time.Time `json:"valid_from"`
	ValidTo   *time.Time `json:"valid_to"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Review is customer feedback attached to a product.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"index;not null" json:"product_id"`
	Author     string    `gorm:"size:191" json:"author"`
	Rating     int       `json:"rating"`
	Title      string    `gorm:"size:255" json:"title"`
	Comment    string    `gorm:"type:text" json:"comment"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditLog records catalog mutations.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Entity    string         `gorm:"size:64;not null" json:"entity"`
	EntityID  uint           `gorm:"index" json:"entity_id"`
	Action    string         `gorm:"size:32;not null" json:"action"`
	Changes   datatypes.JSON `json:"changes"`
	CreatedAt time.Time      `json:"created_at"`
}

// AutoMigrate creates or updates the catalog schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Brand{}, &Category{}, &Seller{}, &Tag{},
		&Product{}, &ProductVariant{}, &Media{}, &Attribute{},
		&Inventory{}, &Pricing{}, &Review{}, &AuditLog{},
	)
}
