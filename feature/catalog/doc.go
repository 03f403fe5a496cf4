// Package catalog owns the normalized product catalog.
//
// Its center is the Reconciler, which takes a loosely structured product
// bundle and fans it out into the relational schema with idempotent upsert
// semantics:
//
//   - Brand, Category, Seller, Product, ProductVariant, and Tag are
//     deduplicated by natural key (name or SKU). Resubmitting a bundle
//     updates the matched records in place.
//   - Media and Attribute rows are append-only; every submission adds new
//     rows.
//   - Dependency order is brand/category/seller, then product, then the
//     product's children. A mid-sequence failure aborts the rest and leaves
//     earlier writes applied; there is no transaction and no rollback.
//
// The package also exposes the direct CRUD surface over products, with
// reference expansion on reads.
//
// # HTTP Endpoints
//
//   - GET    /api/products         : list products, expanded
//   - GET    /api/products/:id     : single product with all child records
//   - POST   /api/products         : create from raw fields
//   - PUT    /api/products/:id     : partial update
//   - DELETE /api/products/:id     : delete (no cascade)
//   - POST   /api/products/manual  : reconcile a submitted bundle
package catalog
