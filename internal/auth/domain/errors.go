package domain

import "errors"

var (
	// ErrValidation is returned when a required signup field is missing.
	ErrValidation = errors.New("all fields are required")
	// ErrConflict is returned when an account with the email already
	// exists for the same role.
	ErrConflict = errors.New("account already exists")
	// ErrInvalidCredentials hides whether the email or the password was
	// wrong, so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers missing, malformed, badly signed and expired
	// bearer tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNotFound is returned when a token's account id no longer
	// resolves to a row.
	ErrNotFound = errors.New("account not found")
)
