package user

import "errors"

var (
	ErrLoginTaken = errors.New("login already exists")

	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password so the two cases stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("wrong credentials")
)
