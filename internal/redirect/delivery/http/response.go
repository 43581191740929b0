package http

import (
	"encoding/json"
	"net/http"

	"go-affiliate/pkg/problemdetails"
)

// writeProblem writes an RFC 7807 Problem Details response
func writeProblem(w http.ResponseWriter, problem *problemdetails.ProblemDetail) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	json.NewEncoder(w).Encode(problem)
}

// writeTrackingRedirect sends a 302 to location as given. http.Redirect is
// not used because it rewrites relative and malformed locations.
func writeTrackingRedirect(w http.ResponseWriter, location string) {
	h := w.Header()
	h.Set("Location", location)
	h.Set("Cache-Control", "no-store")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("X-Robots-Tag", "noindex")
	w.WriteHeader(http.StatusFound)
}
