package http

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"go-affiliate/internal/metrics"
	"go-affiliate/internal/redirect/ratelimit"
	"go-affiliate/pkg/problemdetails"
)

const (
	// maxIPLength is the longest textual IPv6 address.
	maxIPLength = 45
	unknownIP   = "0.0.0.0"
)

// ClientIP returns the client address set by the RealIP middleware, without
// its port. Missing or oversized values map to 0.0.0.0.
func ClientIP(r *http.Request) string {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	if ip == "" || len(ip) > maxIPLength {
		return unknownIP
	}
	return ip
}

// RateLimit returns a middleware that admits at most the limiter's quota of
// requests per client IP.
func RateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := limiter.Allow(r.Context(), ClientIP(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

			if !d.Allowed {
				metrics.RateLimited.Inc()

				retryAfter := int(time.Until(d.ResetAt).Seconds() + 0.999)
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Cache-Control", "no-store")

				writeProblem(w, problemdetails.New(
					http.StatusTooManyRequests,
					problemdetails.TypeRateLimitExceeded,
					"Rate Limit Exceeded",
					"Too many requests. Please try again later.",
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
