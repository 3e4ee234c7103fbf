// Package auth implements first-party password authentication and the
// in-process session/profile manager consumed by the CLIs and tests.
package auth

import (
	"context"
	"time"

	"server/internal/domain"
)

// Session is an authenticated login instance. The token is the bearer
// credential presented on API calls; the sessions table tracks its
// revocation state.
type Session struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// SignUpParams carries the signup form plus request-derived defaults.
type SignUpParams struct {
	Email    string
	Password string
	Name     string
	Country  string
	Currency domain.Currency
}

// Authenticator is the collaborator the session manager delegates to.
// OnSessionChange fires once immediately with the currently held session
// (nil when anonymous) and again on every sign-in and sign-out; it is the
// sole source of truth for session state.
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignUp returns (nil, nil) when the account was created but email
	// confirmation is still pending, so no session exists yet.
	SignUp(ctx context.Context, params SignUpParams) (*Session, error)
	SignOut(ctx context.Context, token string) error
	OnSessionChange(fn func(*Session)) (unsubscribe func())
}
