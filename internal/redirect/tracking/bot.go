package tracking

import (
	"regexp"

	ua "github.com/mileusna/useragent"
)

var botPattern = regexp.MustCompile(`(?i)(bot|crawler|spider|preview|facebookexternalhit|slackbot|whatsapp|telegram)`)

// BotFilter classifies automated traffic from the User-Agent header.
// A bot is still redirected; its click is just not recorded.
type BotFilter struct{}

// NewBotFilter creates a new BotFilter.
func NewBotFilter() *BotFilter {
	return &BotFilter{}
}

// IsBot reports whether userAgent belongs to a crawler or link-preview fetcher.
func (f *BotFilter) IsBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	if botPattern.MatchString(userAgent) {
		return true
	}
	return ua.Parse(userAgent).Bot
}
