package domain

import "errors"

// Registration conflicts. Email is checked before username, so when both
// collide the email error surfaces first.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// Credential and token failures. ErrInvalidCredentials is deliberately
// generic: it never distinguishes an unknown username from a wrong password.
var (
	ErrInvalidCredentials    = errors.New("incorrect username or password")
	ErrTooManyAttempts       = errors.New("too many failed login attempts")
	ErrMissingToken          = errors.New("missing authorization header")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMissingClaim     = errors.New("token missing required claim")
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrTodoNotFound = errors.New("todo not found")
	ErrForbidden    = errors.New("access forbidden")
)
