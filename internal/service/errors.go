package service

import "errors"

// Error kinds surfaced by services. Handlers map these to HTTP status codes;
// tests branch on them with errors.Is instead of matching message text.
var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrEmailTaken   = errors.New("email already registered")

	// ErrInvalidCredentials deliberately covers both "no such account" and
	// "wrong password" so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("invalid token")
	ErrUnauthorized   = errors.New("unauthorized")

	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("forbidden")

	// ErrStorage is the catch-all for persistence failures. Driver detail is
	// kept in the wrapped error for server-side logs and never shown to clients.
	ErrStorage = errors.New("storage error")
)
