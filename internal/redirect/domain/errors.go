package domain

import "errors"

var (
	ErrOfferNotFound        = errors.New("offer not found")
	ErrOfferNotRedirectable = errors.New("offer has no affiliate url")
	ErrSubIDConflict        = errors.New("subid already recorded")
	ErrMissingOfferID       = errors.New("offerId is required")
)
