package store

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrMalformedChoices marks a question whose stored choices blob no
	// longer parses. Readers treat the affected result set as empty.
	ErrMalformedChoices = errors.New("malformed choices data")
)
