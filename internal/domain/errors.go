package domain

import "errors"

// Sentinel errors shared across the pipeline. Network-facing collaborators
// return ErrNotFound/ErrUpstreamUnavailable; the normalizer returns
// ErrMalformedUpstream; the HTTP layer returns ErrValidation for bad queries.
// All are matched with errors.Is after fmt.Errorf("%w") wrapping.
var (
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedUpstream   = errors.New("malformed upstream data")
	ErrValidation          = errors.New("invalid request")
)
