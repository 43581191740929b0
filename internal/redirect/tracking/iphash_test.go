package tracking

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

// TestIPHasher_Deterministic verifies identical inputs yield identical tokens
func TestIPHasher_Deterministic(t *testing.T) {
	h := NewIPHasher("s3cret")

	first := h.Hash("203.0.113.7")
	second := NewIPHasher("s3cret").Hash("203.0.113.7")

	assert.Equal(t, first, second)
	assert.Regexp(t, hexToken, first)
}

// TestIPHasher_DifferentIPs_NoCollisions verifies distinct IPs map to distinct tokens
func TestIPHasher_DifferentIPs_NoCollisions(t *testing.T) {
	h := NewIPHasher("s3cret")
	seen := make(map[string]string)

	for a := 0; a < 16; a++ {
		for b := 0; b < 256; b++ {
			ip := fmt.Sprintf("10.%d.%d.1", a, b)
			token := h.Hash(ip)

			prev, dup := seen[token]
			assert.False(t, dup, "collision between %s and %s", prev, ip)
			assert.NotContains(t, token, ip)
			seen[token] = ip
		}
	}
}

// TestIPHasher_SecretChangesToken verifies the hash is keyed
func TestIPHasher_SecretChangesToken(t *testing.T) {
	ip := "2001:db8::1"

	assert.NotEqual(t, NewIPHasher("a").Hash(ip), NewIPHasher("b").Hash(ip))
}

// TestIPHasher_EmptySecret_UsesFallback verifies a missing secret never fails
func TestIPHasher_EmptySecret_UsesFallback(t *testing.T) {
	ip := "198.51.100.20"

	assert.Equal(t, NewIPHasher(FallbackIPHashSecret).Hash(ip), NewIPHasher("").Hash(ip))
}
