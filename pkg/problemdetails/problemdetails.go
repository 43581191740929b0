package problemdetails

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	TypeInvalidRequest    = "invalid-request"
	TypeOfferNotFound     = "offer-not-found"
	TypeRateLimitExceeded = "rate-limit-exceeded"
	TypeInternalError     = "internal-error"
	TypeValidationError   = "validation-error"
)

const typeBaseURL = "https://api.example.com/problems/"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ProblemDetail struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", typeBaseURL, problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func NewValidation(fieldErrors []FieldError) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", typeBaseURL, TypeValidationError),
		Title:  "Validation Failed",
		Status: 400,
		Detail: "Request validation failed",
		Errors: fieldErrors,
	}
}

// FromValidation turns ozzo-validation field errors into a validation problem.
// Errors that are not field errors are reported under the "query" field.
func FromValidation(err error) *ProblemDetail {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return NewValidation([]FieldError{{Field: "query", Message: err.Error()}})
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]FieldError, 0, len(names))
	for _, name := range names {
		if fields[name] == nil {
			continue
		}
		out = append(out, FieldError{Field: name, Message: fields[name].Error()})
	}
	return NewValidation(out)
}
