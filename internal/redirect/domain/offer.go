package domain

// Offer is a merchant listing for a product. It is owned by the catalog and
// only read here.
type Offer struct {
	ID             string  `json:"id" db:"id"`
	DestinationURL string  `json:"destination_url" db:"destination_url"`
	AffiliateURL   *string `json:"affiliate_url,omitempty" db:"affiliate_url"`
	ProductID      string  `json:"product_id" db:"product_id"`
	MerchantID     string  `json:"merchant_id" db:"merchant_id"`
}

// Redirectable reports whether the offer carries an affiliate URL.
func (o *Offer) Redirectable() bool {
	return o != nil && o.AffiliateURL != nil && *o.AffiliateURL != ""
}
