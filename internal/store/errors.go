package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// uniqueViolation is the Postgres error code for a unique constraint failure.
const uniqueViolation = "23505"
