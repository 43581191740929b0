package http

import (
	"encoding/json"
	"net/http"

	"go-affiliate/pkg/problemdetails"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeData wraps data in the admin success envelope
func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeProblem writes an RFC 7807 Problem Details response
func writeProblem(w http.ResponseWriter, problem *problemdetails.ProblemDetail) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	json.NewEncoder(w).Encode(problem)
}
