package sqlstore

import (
	"context"
	"testing"
	"time"

	analyticsstore "go-affiliate/internal/analytics/repository/sqlstore"
	"go-affiliate/internal/analytics/usecase"
	"go-affiliate/internal/database"
	"go-affiliate/internal/redirect/domain"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresStoreSuite runs the repositories against a real Postgres.
type PostgresStoreSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *sqlx.DB
	offers      *OfferRepository
	clicks      *ClickRepository
	counts      *analyticsstore.ClickCountRepository
	products    *analyticsstore.ProductRepository
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("affiliate"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.db, err = database.OpenDB(database.DriverPostgres, dsn)
	require.NoError(s.T(), err)
	require.NoError(s.T(), database.RunMigrations(s.db))

	s.offers = NewOfferRepository(s.db)
	s.clicks = NewClickRepository(s.db)
	s.counts = analyticsstore.NewClickCountRepository(s.db)
	s.products = analyticsstore.NewProductRepository(s.db)
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.pgContainer != nil {
		s.pgContainer.Terminate(s.ctx)
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	s.db.MustExec(`TRUNCATE clicks, offers, products`)
}

func (s *PostgresStoreSuite) TestFindOffer() {
	s.db.MustExec(s.db.Rebind(`INSERT INTO offers (id, destination_url, affiliate_url, product_id, merchant_id) VALUES (?, ?, ?, ?, ?)`),
		"o1", "https://shop.example/p/1", "https://aff.example/t?id=1", "p1", "m1")

	offer, err := s.offers.FindOffer(s.ctx, "o1")

	s.Require().NoError(err)
	s.Equal("p1", offer.ProductID)
	s.True(offer.Redirectable())
}

func (s *PostgresStoreSuite) TestFindOffer_NotFound() {
	_, err := s.offers.FindOffer(s.ctx, "missing")

	s.ErrorIs(err, domain.ErrOfferNotFound)
}

func (s *PostgresStoreSuite) TestInsertClick() {
	click := &domain.Click{OfferID: "o1", SubID: "s1", IPHash: "h", ProductID: lo.ToPtr("p1")}

	err := s.clicks.InsertClick(s.ctx, click)

	s.Require().NoError(err)
	s.NotZero(click.ID)
	s.WithinDuration(time.Now(), click.CreatedAt, time.Minute)
}

func (s *PostgresStoreSuite) TestInsertClick_DuplicateSubID() {
	s.Require().NoError(s.clicks.InsertClick(s.ctx, &domain.Click{OfferID: "o1", SubID: "dup", IPHash: "h"}))

	err := s.clicks.InsertClick(s.ctx, &domain.Click{OfferID: "o1", SubID: "dup", IPHash: "h"})

	s.ErrorIs(err, domain.ErrSubIDConflict)
}

func (s *PostgresStoreSuite) TestInsertClick_KeepsPresetCreatedAt() {
	at := time.UnixMilli(1736070000123).UTC()
	click := &domain.Click{OfferID: "o1", SubID: "queued", IPHash: "h", CreatedAt: at}

	err := s.clicks.InsertClick(s.ctx, click)

	s.Require().NoError(err)
	s.True(at.Equal(click.CreatedAt))
}

func (s *PostgresStoreSuite) seedClick(subID string, productID *string, at time.Time) {
	s.Require().NoError(s.clicks.InsertClick(s.ctx, &domain.Click{
		OfferID:   "o1",
		SubID:     subID,
		IPHash:    "h",
		ProductID: productID,
		CreatedAt: at,
	}))
}

func (s *PostgresStoreSuite) TestCountBySlot() {
	base := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	s.seedClick("s1", lo.ToPtr("A"), base)
	s.seedClick("s2", lo.ToPtr("A"), base.Add(14*time.Minute))
	s.seedClick("s3", lo.ToPtr("B"), base.Add(20*time.Minute))
	s.seedClick("s4", nil, base.Add(time.Hour))

	from, to := base.UnixMilli(), base.Add(time.Hour).UnixMilli()

	all, err := s.counts.CountBySlot(s.ctx, from, to, "")
	s.Require().NoError(err)
	s.Equal([]usecase.SlotCount{
		{Slot: base.UnixMilli() / usecase.SlotMillis, Count: 2},
		{Slot: base.Add(15*time.Minute).UnixMilli() / usecase.SlotMillis, Count: 1},
	}, all)

	onlyB, err := s.counts.CountBySlot(s.ctx, from, to, "B")
	s.Require().NoError(err)
	s.Equal([]usecase.SlotCount{
		{Slot: base.Add(15*time.Minute).UnixMilli() / usecase.SlotMillis, Count: 1},
	}, onlyB)
}

func (s *PostgresStoreSuite) TestCountByProduct() {
	base := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	s.seedClick("s1", lo.ToPtr("B"), base)
	s.seedClick("s2", lo.ToPtr("A"), base)
	s.seedClick("s3", lo.ToPtr("C"), base)
	s.seedClick("s4", lo.ToPtr("C"), base)
	s.seedClick("s5", nil, base)
	s.seedClick("s6", lo.ToPtr("C"), base.Add(time.Hour))

	rows, err := s.counts.CountByProduct(s.ctx, base.UnixMilli(), base.Add(time.Hour).UnixMilli(), 2)

	s.Require().NoError(err)
	s.Equal([]usecase.ProductCount{
		{ProductID: "C", Count: 2},
		{ProductID: "A", Count: 1},
	}, rows)
}

func (s *PostgresStoreSuite) TestFindProducts() {
	s.db.MustExec(s.db.Rebind(`INSERT INTO products (id, name, slug) VALUES (?, ?, ?)`), "A", "Alpha", "alpha")

	products, err := s.products.FindProducts(s.ctx, []string{"A", "missing"})

	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("A", products[0].ID)
	s.Equal("Alpha", lo.FromPtr(products[0].Name))
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}
