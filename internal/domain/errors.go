package domain

import "errors"

var (
	// ErrUnauthenticated means no credential was presented at all.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidSession means a token was presented but no session holds it.
	ErrInvalidSession = errors.New("invalid session")
	// ErrSessionExpired means the session exists but its expiry has passed.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound means a live session points at a missing user row.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound covers both absence and foreign ownership; callers must
	// not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamAuth means the external identity exchange rejected us.
	ErrUpstreamAuth = errors.New("identity exchange rejected")
)
