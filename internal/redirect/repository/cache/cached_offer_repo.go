package cache

import (
	"context"

	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/redirect/usecase"
)

// Compile-time interface check
var _ usecase.OfferRepository = (*CachedOfferRepository)(nil)

// CachedOfferRepository decorates an OfferRepository with a read-through
// cache. Missing offers are not cached.
type CachedOfferRepository struct {
	repo  usecase.OfferRepository
	cache OfferCache
}

// NewCachedOfferRepository wraps repo with cache.
func NewCachedOfferRepository(repo usecase.OfferRepository, cache OfferCache) *CachedOfferRepository {
	return &CachedOfferRepository{
		repo:  repo,
		cache: cache,
	}
}

// FindOffer checks the cache first and fills it on a miss.
func (r *CachedOfferRepository) FindOffer(ctx context.Context, id string) (*domain.Offer, error) {
	if cached, err := r.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	offer, err := r.repo.FindOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, offer)
	return offer, nil
}

// Invalidate drops a cached offer after the catalog changed it.
func (r *CachedOfferRepository) Invalidate(ctx context.Context, id string) error {
	return r.cache.Invalidate(ctx, id)
}
