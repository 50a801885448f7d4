package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// LLM provider failures. None of these trigger a local retry — the first
	// failure is terminal for the request.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrRateLimited         = errors.New("rate limited")
	ErrUpstream            = errors.New("upstream error")

	// ErrMalformedResponse means the normalizer exhausted every recovery tier
	// without finding a usable list in the LLM output.
	ErrMalformedResponse = errors.New("malformed response")
)
