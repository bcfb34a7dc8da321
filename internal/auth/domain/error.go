package domain

import "errors"

// Login failures collapse into ErrInvalidCredentials regardless of whether
// the account exists; the API must not reveal which half was wrong.
var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("a user with this email already exists")
	ErrWeakPassword       = errors.New("password does not meet the minimum length")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrSessionRevoked  = errors.New("session was revoked")
	ErrInvalidSession  = errors.New("session is not valid")
)
