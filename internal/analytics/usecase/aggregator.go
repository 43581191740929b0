package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
)

const (
	GranularityDay   = "day"
	GranularityMonth = "month"
	GranularityYear  = "year"

	DefaultTopLimit = 50
	MaxTopLimit     = 200

	// SlotMillis is the store's grouping unit. Every zone offset in use is a
	// multiple of 15 minutes, so no slot straddles a local midnight.
	SlotMillis = int64(15 * time.Minute / time.Millisecond)

	// UnresolvedProductName labels products missing from the catalog.
	UnresolvedProductName = "(unresolved)"

	// DefaultTimezone is the reporting zone when none is configured.
	DefaultTimezone = "Asia/Ho_Chi_Minh"
)

var ErrInvalidQuery = errors.New("invalid analytics query")

// TimeQuery selects clicks in [Start, End) bucketed by Granularity.
type TimeQuery struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Granularity string    `json:"granularity"`
	ProductID   string    `json:"productId"`
}

// Validate checks the window and granularity.
func (q TimeQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Start, validation.Required),
		validation.Field(&q.End, validation.Required),
		validation.Field(&q.Granularity, validation.Required,
			validation.In(GranularityDay, GranularityMonth, GranularityYear).
				Error("must be one of day, month, year")),
	)
}

// TopQuery selects the Limit most clicked products in [Start, End).
type TopQuery struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Limit int       `json:"limit"`
}

// Validate checks the window.
func (q TopQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Start, validation.Required),
		validation.Field(&q.End, validation.Required),
	)
}

// BucketCount is the click count of one local calendar bucket.
type BucketCount struct {
	Bucket time.Time `json:"bucket"`
	Clicks int64     `json:"clicks"`
}

// ProductClicks is one row of the top products report.
type ProductClicks struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Clicks    int64  `json:"clicks"`
	Resolved  bool   `json:"resolved"`
}

// ClickAggregator answers read-only reporting queries over recorded clicks.
type ClickAggregator struct {
	store   ClickCountStore
	catalog ProductCatalog
	loc     *time.Location
}

// NewClickAggregator creates an aggregator bucketing in loc. A nil loc uses
// UTC.
func NewClickAggregator(store ClickCountStore, catalog ProductCatalog, loc *time.Location) *ClickAggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &ClickAggregator{
		store:   store,
		catalog: catalog,
		loc:     loc,
	}
}

// Location returns the reporting time zone.
func (a *ClickAggregator) Location() *time.Location {
	return a.loc
}

// ClicksOverTime counts clicks per local day, month or year. Buckets without
// clicks are omitted; the result is ordered by bucket ascending. An empty or
// inverted window yields no buckets.
func (a *ClickAggregator) ClicksOverTime(ctx context.Context, q TimeQuery) ([]BucketCount, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	if !q.End.After(q.Start) {
		return []BucketCount{}, nil
	}

	slots, err := a.store.CountBySlot(ctx, q.Start.UnixMilli(), exclusiveMillis(q.End), q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("count clicks by slot: %w", err)
	}

	counts := make(map[time.Time]int64)
	for _, s := range slots {
		local := time.UnixMilli(s.Slot * SlotMillis).In(a.loc)
		counts[a.truncate(local, q.Granularity)] += s.Count
	}

	buckets := lo.MapToSlice(counts, func(bucket time.Time, clicks int64) BucketCount {
		return BucketCount{Bucket: bucket, Clicks: clicks}
	})
	slices.SortFunc(buckets, func(x, y BucketCount) int {
		return x.Bucket.Compare(y.Bucket)
	})
	return buckets, nil
}

// TopProducts returns the most clicked products with catalog labels.
// Limit is clamped to [1, MaxTopLimit]. An empty or inverted window yields
// no rows.
func (a *ClickAggregator) TopProducts(ctx context.Context, q TopQuery) ([]ProductClicks, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	if !q.End.After(q.Start) {
		return []ProductClicks{}, nil
	}

	rows, err := a.store.CountByProduct(ctx, q.Start.UnixMilli(), exclusiveMillis(q.End), ClampLimit(q.Limit))
	if err != nil {
		return nil, fmt.Errorf("count clicks by product: %w", err)
	}
	if len(rows) == 0 {
		return []ProductClicks{}, nil
	}

	ids := lo.Map(rows, func(r ProductCount, _ int) string { return r.ProductID })
	products, err := a.catalog.FindProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	byID := lo.KeyBy(products, func(p Product) string { return p.ID })

	return lo.Map(rows, func(r ProductCount, _ int) ProductClicks {
		out := ProductClicks{
			ProductID: r.ProductID,
			Name:      UnresolvedProductName,
			Clicks:    r.Count,
		}
		if p, ok := byID[r.ProductID]; ok {
			out.Resolved = true
			if name := lo.FromPtr(p.Name); name != "" {
				out.Name = name
			}
			out.Slug = lo.FromPtr(p.Slug)
		}
		return out
	}), nil
}

// ClampLimit bounds a top-N limit to [1, MaxTopLimit].
func ClampLimit(limit int) int {
	return min(max(limit, 1), MaxTopLimit)
}

func (a *ClickAggregator) truncate(t time.Time, granularity string) time.Time {
	switch granularity {
	case GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, a.loc)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, a.loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, a.loc)
	}
}

// exclusiveMillis converts an exclusive end to unix ms, rounding a partial
// millisecond up so clicks stored in that millisecond stay inside the window.
func exclusiveMillis(end time.Time) int64 {
	ms := end.UnixMilli()
	if end.Nanosecond()%int(time.Millisecond) != 0 {
		ms++
	}
	return ms
}
