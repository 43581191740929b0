package usecase

import (
	"context"

	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/shared/events"
)

// OfferRepository looks up offers owned by the catalog.
type OfferRepository interface {
	// FindOffer returns domain.ErrOfferNotFound when no offer has the id.
	FindOffer(ctx context.Context, id string) (*domain.Offer, error)
}

// ClickStore persists clicks.
type ClickStore interface {
	// InsertClick returns domain.ErrSubIDConflict when the subid is taken.
	InsertClick(ctx context.Context, click *domain.Click) error
}

// ClickPublisher hands a click to the asynchronous recording pipeline.
type ClickPublisher interface {
	PublishClick(ctx context.Context, e events.ClickEvent) error
}

// SubIDSource generates fresh subids.
type SubIDSource interface {
	Generate(offerID, source, position string) string
}

// IPHasher turns a client IP into a non-reversible token.
type IPHasher interface {
	Hash(ip string) string
}

// BotDetector flags automated user agents.
type BotDetector interface {
	IsBot(userAgent string) bool
}

// CountryResolver maps a client IP to an ISO country code, or "".
type CountryResolver interface {
	Country(ip string) string
}
