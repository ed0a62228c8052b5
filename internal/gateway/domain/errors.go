package domain

import "errors"

var (
	ErrMisconfigured  = errors.New("gateway misconfigured")
	ErrMissingBaseURL = errors.New("destination base url is not set")
	ErrInvalidBaseURL = errors.New("destination base url is invalid")
	ErrWeakSecret     = errors.New("signing secret is missing or too short")
	ErrGeoUnknown     = errors.New("geo location unknown")
)
