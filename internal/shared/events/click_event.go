package events

import "time"

// ClickEvent carries one admitted click from the redirect handler to the
// click consumer when recording runs asynchronously.
type ClickEvent struct {
	OfferID    string    `json:"offer_id"`
	SubID      string    `json:"subid"`
	IPHash     string    `json:"ip_hash"`
	UserAgent  string    `json:"user_agent"`
	Referer    string    `json:"referer"`
	ProductID  *string   `json:"product_id,omitempty"`
	MerchantID *string   `json:"merchant_id,omitempty"`
	Country    string    `json:"country,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
