package tracking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// FallbackIPHashSecret keys the hash when no secret is configured. Tokens
// made with it can be brute-forced over the IPv4 space; it only exists so a
// missing setting never breaks the redirect path.
const FallbackIPHashSecret = "salt"

// IPHasher turns client IPs into opaque, deterministic tokens.
type IPHasher struct {
	secret []byte
}

// NewIPHasher creates a hasher keyed with secret, or with
// FallbackIPHashSecret when secret is empty.
func NewIPHasher(secret string) *IPHasher {
	if secret == "" {
		secret = FallbackIPHashSecret
	}
	return &IPHasher{secret: []byte(secret)}
}

// Hash returns hex(HMAC-SHA256(secret, ip)), always 64 characters.
func (h *IPHasher) Hash(ip string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(ip))
	return hex.EncodeToString(mac.Sum(nil))
}
