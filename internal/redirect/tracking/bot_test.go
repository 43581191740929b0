package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBotFilter_IsBot verifies crawler and link-preview agents are recognised
func TestBotFilter_IsBot(t *testing.T) {
	f := NewBotFilter()
	testCases := []struct {
		name      string
		userAgent string
		want      bool
	}{
		{name: "Slackbot", userAgent: "Slackbot-LinkExpanding 1.0 (+https://api.slack.com/robots)", want: true},
		{name: "Googlebot", userAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", want: true},
		{name: "Facebook", userAgent: "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", want: true},
		{name: "WhatsApp", userAgent: "WhatsApp/2.23.20.0", want: true},
		{name: "Telegram", userAgent: "TelegramBot (like TwitterBot)", want: true},
		{name: "generic spider", userAgent: "SomeSPIDER/3.0", want: true},
		{name: "Chrome desktop", userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", want: false},
		{name: "Safari iPhone", userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1", want: false},
		{name: "empty", userAgent: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.IsBot(tc.userAgent))
		})
	}
}
