package sqlstore

import (
	"context"
	"testing"
	"time"

	"go-affiliate/internal/analytics/usecase"
	"go-affiliate/internal/database"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	db, err := database.OpenDB(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedClick(t *testing.T, db *sqlx.DB, productID *string, at time.Time) {
	_, err := db.Exec(`INSERT INTO clicks (offer_id, subid, ip_hash, product_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		"o1", uuid.NewString(), "h", productID, at.UnixMilli())
	require.NoError(t, err)
}

func seedProduct(t *testing.T, db *sqlx.DB, p usecase.Product) {
	_, err := db.NamedExec(`INSERT INTO products (id, name, slug) VALUES (:id, :name, :slug)`, p)
	require.NoError(t, err)
}

func TestCountBySlot_GroupsWithinWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClickCountRepository(db)
	base := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

	seedClick(t, db, lo.ToPtr("A"), base)
	seedClick(t, db, lo.ToPtr("A"), base.Add(14*time.Minute))
	seedClick(t, db, lo.ToPtr("B"), base.Add(20*time.Minute))
	seedClick(t, db, nil, base.Add(-time.Hour)) // before window
	seedClick(t, db, nil, base.Add(time.Hour))  // end is exclusive

	slots, err := repo.CountBySlot(context.Background(), base.UnixMilli(), base.Add(time.Hour).UnixMilli(), "")

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, base.UnixMilli()/usecase.SlotMillis, slots[0].Slot)
	assert.Equal(t, int64(2), slots[0].Count)
	assert.Equal(t, slots[0].Slot+1, slots[1].Slot)
	assert.Equal(t, int64(1), slots[1].Count)
}

func TestCountBySlot_FiltersByProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClickCountRepository(db)
	base := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

	seedClick(t, db, lo.ToPtr("A"), base)
	seedClick(t, db, lo.ToPtr("B"), base)
	seedClick(t, db, nil, base)

	slots, err := repo.CountBySlot(context.Background(), base.UnixMilli(), base.Add(time.Hour).UnixMilli(), "B")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(1), slots[0].Count)
}

func TestCountBySlot_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClickCountRepository(db)

	slots, err := repo.CountBySlot(context.Background(), 0, time.Now().UnixMilli(), "")

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCountByProduct_OrdersAndLimits(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClickCountRepository(db)
	base := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		seedClick(t, db, lo.ToPtr("A"), base.Add(time.Duration(i)*time.Minute))
	}
	for i := 0; i < 3; i++ {
		seedClick(t, db, lo.ToPtr("B"), base.Add(time.Duration(i)*time.Minute))
		seedClick(t, db, lo.ToPtr("C"), base.Add(time.Duration(i)*time.Minute))
	}
	for i := 0; i < 7; i++ {
		seedClick(t, db, nil, base)
	}

	from, to := base.UnixMilli(), base.Add(time.Hour).UnixMilli()

	top, err := repo.CountByProduct(context.Background(), from, to, 1)
	require.NoError(t, err)
	assert.Equal(t, []usecase.ProductCount{{ProductID: "A", Count: 5}}, top)

	all, err := repo.CountByProduct(context.Background(), from, to, 10)
	require.NoError(t, err)
	assert.Equal(t, []usecase.ProductCount{
		{ProductID: "A", Count: 5},
		{ProductID: "B", Count: 3},
		{ProductID: "C", Count: 3},
	}, all)
}

func TestFindProducts_SkipsUnknown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, usecase.Product{ID: "A", Name: lo.ToPtr("Product A"), Slug: lo.ToPtr("product-a")})
	seedProduct(t, db, usecase.Product{ID: "B"})

	products, err := repo.FindProducts(context.Background(), []string{"A", "B", "gone"})

	require.NoError(t, err)
	byID := lo.KeyBy(products, func(p usecase.Product) string { return p.ID })
	require.Len(t, byID, 2)
	assert.Equal(t, "Product A", *byID["A"].Name)
	assert.Nil(t, byID["B"].Name)
}

func TestFindProducts_NoIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	products, err := repo.FindProducts(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, products)
}
