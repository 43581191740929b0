// Package enrichment derives click attributes from request metadata.
package enrichment

import (
	"fmt"
	"net"

	geoip2 "github.com/oschwald/geoip2-golang"
)

// GeoIPResolver resolves IP addresses to country codes using a GeoIP2 or
// GeoLite2 country database.
type GeoIPResolver struct {
	db *geoip2.Reader
}

// NewGeoIPResolver opens the database at dbPath.
func NewGeoIPResolver(dbPath string) (*GeoIPResolver, error) {
	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open geoip database %q: %w", dbPath, err)
	}
	return &GeoIPResolver{db: db}, nil
}

// Close closes the GeoIP database reader.
func (g *GeoIPResolver) Close() error {
	if g == nil {
		return nil
	}
	return g.db.Close()
}

// Country returns the ISO country code for ip, or "" for private or invalid
// addresses and lookup failures. A nil resolver always returns "".
func (g *GeoIPResolver) Country(ip string) string {
	if g == nil {
		return ""
	}

	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsUnspecified() {
		return ""
	}

	record, err := g.db.Country(parsed)
	if err != nil {
		return ""
	}
	return record.Country.IsoCode
}
