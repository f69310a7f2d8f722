package profiles

import "errors"

var (
	// ErrNotFound indicates the user has no stored discovery profile.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidInput indicates a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)
