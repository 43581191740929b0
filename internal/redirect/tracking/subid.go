// Package tracking holds the pure building blocks of a tracked redirect:
// subid generation, IP hashing and bot detection.
package tracking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// MaxSubIDLength is the column width of clicks.subid.
	MaxSubIDLength = 100

	subIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	subIDRandLen  = 8
)

// SubIDGenerator builds collision-resistant tracking identifiers.
type SubIDGenerator struct {
	now    func() time.Time
	random func() (string, error)
}

// NewSubIDGenerator creates a generator backed by the wall clock and NanoID.
func NewSubIDGenerator() *SubIDGenerator {
	return &SubIDGenerator{
		now: time.Now,
		random: func() (string, error) {
			return gonanoid.Generate(subIDAlphabet, subIDRandLen)
		},
	}
}

// Generate returns a fresh subid for one click. The result always matches
// ^[A-Za-z0-9_-]{1,100}$ whatever the caller passes as source or position.
func (g *SubIDGenerator) Generate(offerID, source, position string) string {
	now := g.now()

	suffix, err := g.random()
	if err != nil || suffix == "" {
		suffix = strconv.FormatInt(now.UnixNano()%1_000_000_000, 36)
	}

	var b strings.Builder
	b.WriteString("s")
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	b.WriteString(suffix)
	b.WriteString("_")

	first := true
	for _, part := range []string{offerID, source, position} {
		if part == "" {
			continue
		}
		if !first {
			b.WriteString("_")
		}
		b.WriteString(part)
		first = false
	}

	return Sanitize(b.String())
}

// Sanitize replaces every character outside [A-Za-z0-9_-] with '_' and cuts
// the result to MaxSubIDLength bytes.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(min(len(raw), MaxSubIDLength))
	for _, r := range raw {
		if b.Len() >= MaxSubIDLength {
			break
		}
		if isSubIDChar(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isSubIDChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	}
	return false
}

// LegacySubID is the /click entry point's identifier: offerId:productId:millis.
// Two requests for the same offer and product in the same millisecond collide.
func LegacySubID(offerID, productID string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", offerID, productID, now.UnixMilli())
}
