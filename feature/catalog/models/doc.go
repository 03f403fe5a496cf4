// Package models defines the normalized catalog schema.
//
// Brand, Category, Seller, Product, ProductVariant, and Tag carry a unique
// natural key (name or SKU) used by the reconciler to detect resubmissions.
// Media and Attribute rows have no natural key and are append-only.
//
// Schema-less payload fields (category metadata, product dimensions, variant
// attributes) are stored as JSON columns via gorm.io/datatypes.
package models
