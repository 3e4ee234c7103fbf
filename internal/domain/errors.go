package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrSessionRevoked     = errors.New("session revoked")
)

// ValidationError is a client-side form failure. The text is shown to the
// user verbatim, so messages are written for humans, not logs.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err originated from input validation.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
