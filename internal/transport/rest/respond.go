package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heshanf/agridataset-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps sentinel domain errors to HTTP statuses. Unrecognized
// errors become an opaque 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "upstream rate limit exceeded")
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		writeError(w, http.StatusBadGateway, "generation service unavailable")
	case errors.Is(err, domain.ErrUpstream):
		writeError(w, http.StatusBadGateway, "generation service error")
	case errors.Is(err, domain.ErrMalformedResponse):
		writeError(w, http.StatusInternalServerError, "could not parse generated content")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
