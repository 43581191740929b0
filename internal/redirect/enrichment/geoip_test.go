package enrichment

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGeoIPResolver_MissingFile_ReturnsError verifies startup can detect a bad path
func TestNewGeoIPResolver_MissingFile_ReturnsError(t *testing.T) {
	resolver, err := NewGeoIPResolver(filepath.Join(t.TempDir(), "missing.mmdb"))

	require.Error(t, err)
	assert.Nil(t, resolver)
	assert.Contains(t, err.Error(), "missing.mmdb")
}

// TestGeoIPResolver_Nil_ReturnsEmpty verifies a disabled resolver is safe to call
func TestGeoIPResolver_Nil_ReturnsEmpty(t *testing.T) {
	var resolver *GeoIPResolver

	assert.Empty(t, resolver.Country("8.8.8.8"))
	assert.NoError(t, resolver.Close())
}

// TestGeoIPResolver_UnroutableAddresses_SkipLookup verifies no lookup for local addresses
func TestGeoIPResolver_UnroutableAddresses_SkipLookup(t *testing.T) {
	// db is never touched for these inputs
	resolver := &GeoIPResolver{}

	for _, ip := range []string{"", "not-an-ip", "10.0.0.1", "192.168.1.1", "127.0.0.1", "0.0.0.0", "::1"} {
		assert.Empty(t, resolver.Country(ip), ip)
	}
}
