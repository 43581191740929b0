package usecase

import (
	"net/url"
	"strings"
)

// TrackingParam is one query parameter appended to an affiliate URL.
type TrackingParam struct {
	Name  string
	Value string
}

// ComposeRedirectURL appends params to affiliateURL. A parameter is skipped
// when its value is empty or the URL already carries it, even with an empty
// value. The existing query is kept byte for byte. A URL that does not parse
// or is not absolute is returned unchanged.
func ComposeRedirectURL(affiliateURL string, params []TrackingParam) string {
	u, err := url.Parse(affiliateURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return affiliateURL
	}

	existing, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		// Keep what the merchant sent; only names we can see are protected.
		existing = queryNames(u.RawQuery)
	}

	var b strings.Builder
	b.WriteString(u.RawQuery)
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		if _, ok := existing[p.Name]; ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
		existing[p.Name] = nil
	}

	u.RawQuery = b.String()
	u.ForceQuery = false
	return u.String()
}

// queryNames collects parameter names from a query that url.ParseQuery
// rejected, keeping the raw name when it cannot be unescaped.
func queryNames(rawQuery string) url.Values {
	names := url.Values{}
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name, _, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(name); err == nil {
			name = unescaped
		}
		names[name] = nil
	}
	return names
}
