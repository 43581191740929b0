package domain

import "time"

// MaxHeaderLength bounds the stored user agent and referer.
const MaxHeaderLength = 512

// Click is one recorded redirect decision. ID is assigned by the store, as is
// CreatedAt unless already set; ProductID and MerchantID are only set by the
// /click entry point.
type Click struct {
	ID         int64
	OfferID    string
	SubID      string
	IPHash     string
	UserAgent  string
	Referer    string
	ProductID  *string
	MerchantID *string
	Country    string
	CreatedAt  time.Time
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
