package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/redirect/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	insertClickQuery = `INSERT INTO clicks (offer_id, subid, ip_hash, user_agent, referer, product_id, merchant_id, country)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, created_at`

	insertClickAtQuery = `INSERT INTO clicks (offer_id, subid, ip_hash, user_agent, referer, product_id, merchant_id, country, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, created_at`

	pgUniqueViolation = "23505"
)

// ClickRepository appends clicks.
type ClickRepository struct {
	db *sqlx.DB
}

// NewClickRepository creates a new SQL-backed click repository
func NewClickRepository(db *sqlx.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Ensure ClickRepository implements usecase.ClickStore at compile time
var _ usecase.ClickStore = (*ClickRepository)(nil)

// InsertClick stores the click and fills in its id and creation time. A
// non-zero click.CreatedAt is kept; otherwise the store assigns it.
// A duplicate subid returns domain.ErrSubIDConflict.
func (r *ClickRepository) InsertClick(ctx context.Context, click *domain.Click) error {
	query := insertClickQuery
	args := []interface{}{
		click.OfferID,
		click.SubID,
		click.IPHash,
		click.UserAgent,
		click.Referer,
		click.ProductID,
		click.MerchantID,
		click.Country,
	}
	if !click.CreatedAt.IsZero() {
		query = insertClickAtQuery
		args = append(args, click.CreatedAt.UnixMilli())
	}

	var createdAt int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&click.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert click %q: %w", click.SubID, domain.ErrSubIDConflict)
		}
		return fmt.Errorf("insert click: %w", err)
	}

	click.CreatedAt = time.UnixMilli(createdAt).UTC()
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}

	// SQLite returns "UNIQUE constraint failed" in the error message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
