package domain

import "errors"

// Query and network errors. All are recoverable per query; wrap with %w and
// match with errors.Is.
var (
	ErrMalformedQuery    = errors.New("malformed query")
	ErrUnknownVariable   = errors.New("unknown variable")
	ErrInvalidOutcome    = errors.New("invalid outcome")
	ErrContradiction     = errors.New("contradiction")
	ErrMissingAssignment = errors.New("missing assignment")
	ErrInvalidNetwork    = errors.New("invalid network")
)

// IsQueryError reports whether err stems from the query itself rather than
// from the network or the infrastructure.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrMalformedQuery) ||
		errors.Is(err, ErrUnknownVariable) ||
		errors.Is(err, ErrInvalidOutcome) ||
		errors.Is(err, ErrContradiction) ||
		errors.Is(err, ErrMissingAssignment)
}
