package auth

import "errors"

var (
	// ErrUserNotFound is returned when resolving permissions for an unknown user.
	ErrUserNotFound = errors.New("user not found")
)
