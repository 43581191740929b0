package usecase

import "context"

// SlotCount is the number of clicks in one 15-minute UTC slot. Slot is
// created_at / SlotMillis.
type SlotCount struct {
	Slot  int64 `db:"slot"`
	Count int64 `db:"clicks"`
}

// ProductCount is the number of clicks attributed to one product.
type ProductCount struct {
	ProductID string `db:"product_id"`
	Count     int64  `db:"clicks"`
}

// Product is the catalog view used to label top-N rows.
type Product struct {
	ID   string  `db:"id"`
	Name *string `db:"name"`
	Slug *string `db:"slug"`
}

// ClickCountStore runs the aggregate queries over recorded clicks. Time
// bounds are unix milliseconds, from inclusive and to exclusive.
type ClickCountStore interface {
	// CountBySlot returns non-empty slots in ascending order. An empty
	// productID matches every click.
	CountBySlot(ctx context.Context, from, to int64, productID string) ([]SlotCount, error)
	// CountByProduct returns at most limit products with a non-null id,
	// ordered by count descending then product id ascending.
	CountByProduct(ctx context.Context, from, to int64, limit int) ([]ProductCount, error)
}

// ProductCatalog resolves product ids to catalog entries. Unknown ids are
// left out of the result.
type ProductCatalog interface {
	FindProducts(ctx context.Context, ids []string) ([]Product, error)
}
