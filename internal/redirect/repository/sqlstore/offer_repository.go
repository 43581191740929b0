// Package sqlstore implements the redirect ports on SQLite or Postgres.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/redirect/usecase"

	"github.com/jmoiron/sqlx"
)

const findOfferQuery = `SELECT id, destination_url, affiliate_url, product_id, merchant_id FROM offers WHERE id = ?`

// OfferRepository reads offers from the catalog tables.
type OfferRepository struct {
	db *sqlx.DB
}

// NewOfferRepository creates a new SQL-backed offer repository
func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// Ensure OfferRepository implements usecase.OfferRepository at compile time
var _ usecase.OfferRepository = (*OfferRepository)(nil)

// FindOffer retrieves an offer by its id
func (r *OfferRepository) FindOffer(ctx context.Context, id string) (*domain.Offer, error) {
	var offer domain.Offer
	if err := r.db.GetContext(ctx, &offer, r.db.Rebind(findOfferQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}
