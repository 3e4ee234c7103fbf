package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/middleware"
	"server/internal/sqlinline"
)

const (
	tokenIssuer   = "pawhaven"
	tokenAudience = "pawhaven-clients"
)

// Service implements Authenticator against PostgreSQL: bcrypt password
// verification, HS256 bearer tokens and a sessions table for revocation.
type Service struct {
	sql            infra.SQLExecutor
	logger         infra.Logger
	jwtSecret      string
	sessionTTL     time.Duration
	requireConfirm bool

	mu      sync.Mutex
	current *Session
	subs    map[int]func(*Session)
	nextSub int
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	SQL        infra.SQLExecutor
	Logger     infra.Logger
	JWTSecret  string
	SessionTTL time.Duration
	// RequireEmailConfirm gates new accounts behind email confirmation:
	// signup succeeds but returns no session until confirmed.
	RequireEmailConfirm bool
}

func NewService(opts ServiceOptions) *Service {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		sql:            opts.SQL,
		logger:         opts.Logger,
		jwtSecret:      opts.JWTSecret,
		sessionTTL:     ttl,
		requireConfirm: opts.RequireEmailConfirm,
		subs:           make(map[int]func(*Session)),
	}
}

// SignInWithPassword verifies credentials, mints a bearer token and
// records the session. A wrong email and a wrong password are
// indistinguishable to the caller.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	row := s.sql.QueryRow(ctx, sqlinline.QSelectCredentialsByEmail, email)
	var userID, hash string
	var confirmed bool
	if err := row.Scan(&userID, &hash, &confirmed); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !confirmed {
		return nil, domain.ErrEmailNotConfirmed
	}

	session, err := s.mintSession(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	s.emit(session)
	return session, nil
}

// SignUp creates a profile with role donor. When email confirmation is
// required the account is created unconfirmed and (nil, nil) is returned;
// otherwise the new user is signed in immediately.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (*Session, error) {
	email := strings.TrimSpace(params.Email)
	if email == "" || params.Password == "" {
		return nil, domain.ValidationError("Email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	currency := params.Currency
	if currency == "" {
		currency = domain.CurrencyUSD
	}

	row := s.sql.QueryRow(ctx, sqlinline.QInsertProfile,
		params.Name, email, params.Country, string(currency), string(hash), !s.requireConfirm)
	var userID string
	if err := row.Scan(&userID); err != nil {
		if infra.IsNoRows(err) {
			// on conflict do nothing returned no row
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	if s.requireConfirm {
		return nil, nil
	}

	session, err := s.mintSession(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	s.emit(session)
	return session, nil
}

// SignOut revokes the session behind the bearer token. Revocation is
// server-side bookkeeping; an already-issued token stays verifiable until
// it expires.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token != "" {
		if _, err := s.sql.Exec(ctx, sqlinline.QRevokeSessionByTokenHash, hashToken(token)); err != nil {
			return err
		}
	}
	s.emit(nil)
	return nil
}

// OnSessionChange registers a subscriber. It is invoked synchronously
// with the current session before returning, then on every change.
func (s *Service) OnSessionChange(fn func(*Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) mintSession(ctx context.Context, userID, email string) (*Session, error) {
	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(s.sessionTTL)
	token, err := middleware.SignJWT(s.jwtSecret, middleware.TokenClaims{
		Sub:       userID,
		Email:     email,
		SessionID: sessionID,
		Exp:       expiresAt.Unix(),
		Issuer:    tokenIssuer,
		Audience:  tokenAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	row := s.sql.QueryRow(ctx, sqlinline.QInsertSession, sessionID, userID, hashToken(token), expiresAt)
	var id string
	if err := row.Scan(&id); err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	return &Session{UserID: userID, Email: email, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *Service) emit(session *Session) {
	s.mu.Lock()
	s.current = session
	fns := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(session)
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

var _ Authenticator = (*Service)(nil)
