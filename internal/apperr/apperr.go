package apperr

import "errors"

// Sentinel errors for the failure taxonomy. Handlers map these onto HTTP
// status codes; everything else is treated as an internal error.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrAnalysisFailed  = errors.New("analysis failed")
	ErrUnavailable     = errors.New("service unavailable")
)
