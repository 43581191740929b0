// Package sqlstore implements the analytics read ports on SQLite or Postgres.
package sqlstore

import (
	"context"
	"fmt"

	"go-affiliate/internal/analytics/usecase"

	"github.com/jmoiron/sqlx"
)

// Slots are computed with integer division so both dialects group on the
// same created_at / SlotMillis value.
const (
	countBySlotQuery = `SELECT created_at / ? AS slot, COUNT(*) AS clicks
FROM clicks
WHERE created_at >= ? AND created_at < ?
GROUP BY slot
ORDER BY slot`

	countBySlotForProductQuery = `SELECT created_at / ? AS slot, COUNT(*) AS clicks
FROM clicks
WHERE created_at >= ? AND created_at < ? AND product_id = ?
GROUP BY slot
ORDER BY slot`

	countByProductQuery = `SELECT product_id, COUNT(*) AS clicks
FROM clicks
WHERE created_at >= ? AND created_at < ? AND product_id IS NOT NULL
GROUP BY product_id
ORDER BY clicks DESC, product_id ASC
LIMIT ?`

	findProductsQuery = `SELECT id, name, slug FROM products WHERE id IN (?)`
)

// ClickCountRepository runs aggregate queries over the clicks table.
type ClickCountRepository struct {
	db *sqlx.DB
}

// NewClickCountRepository creates a new SQL-backed click count repository
func NewClickCountRepository(db *sqlx.DB) *ClickCountRepository {
	return &ClickCountRepository{db: db}
}

// Ensure ClickCountRepository implements usecase.ClickCountStore at compile time
var _ usecase.ClickCountStore = (*ClickCountRepository)(nil)

// CountBySlot returns click counts per 15-minute slot in [from, to)
func (r *ClickCountRepository) CountBySlot(ctx context.Context, from, to int64, productID string) ([]usecase.SlotCount, error) {
	query, args := countBySlotQuery, []interface{}{usecase.SlotMillis, from, to}
	if productID != "" {
		query = countBySlotForProductQuery
		args = append(args, productID)
	}

	slots := []usecase.SlotCount{}
	if err := r.db.SelectContext(ctx, &slots, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select slot counts: %w", err)
	}
	return slots, nil
}

// CountByProduct returns the limit most clicked products in [from, to)
func (r *ClickCountRepository) CountByProduct(ctx context.Context, from, to int64, limit int) ([]usecase.ProductCount, error) {
	rows := []usecase.ProductCount{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(countByProductQuery), from, to, limit); err != nil {
		return nil, fmt.Errorf("select product counts: %w", err)
	}
	return rows, nil
}

// ProductRepository reads product labels from the catalog.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new SQL-backed product catalog
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Ensure ProductRepository implements usecase.ProductCatalog at compile time
var _ usecase.ProductCatalog = (*ProductRepository)(nil)

// FindProducts returns the catalog entries for ids. Unknown ids are skipped.
func (r *ProductRepository) FindProducts(ctx context.Context, ids []string) ([]usecase.Product, error) {
	if len(ids) == 0 {
		return []usecase.Product{}, nil
	}

	query, args, err := sqlx.In(findProductsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("expand product ids: %w", err)
	}

	products := []usecase.Product{}
	if err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}
