package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password. The two must stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid user or password")

	// ErrTokenInvalid covers every decode failure: bad signature,
	// malformed structure and expiry alike.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrNotAuthenticated is returned by the required guard for every
	// non-authenticated session state.
	ErrNotAuthenticated = errors.New("not authenticated")
)
