// Package errs contains sentinel errors shared across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist (or, for
	// owner-filtered updates, matched zero rows).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g. username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates a missing, malformed or forged identity token.
	ErrUnauthorized = errors.New("unauthorized")
)
