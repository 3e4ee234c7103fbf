package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"server/internal/domain"
	"server/internal/infra"
)

// ErrConfirmEmail is returned by SignUp when the account exists but no
// session was issued because email confirmation is pending. The text is
// shown to the user as-is.
var ErrConfirmEmail = errors.New("Check your email to confirm your account.")

// State is the session manager's lifecycle position. The tagged state
// replaces the loading/session/profile boolean soup so impossible
// combinations cannot be represented.
type State int

const (
	// StateInitializing holds until the authenticator delivers its first
	// change notification.
	StateInitializing State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "initializing"
	}
}

// Snapshot is an atomic view of the manager's state.
type Snapshot struct {
	State   State
	Session *Session
	Profile *domain.Profile
}

// Loading reports whether the first auth notification is still pending.
func (s Snapshot) Loading() bool { return s.State == StateInitializing }

const profileFetchTimeout = 10 * time.Second

// Manager tracks "who is signed in and what is their profile". It holds a
// single subscription to the Authenticator as the sole source of truth
// and fetches the profile whenever the session changes. Construct one per
// consumer; there is no package-level instance.
type Manager struct {
	authn    Authenticator
	profiles domain.ProfileRepository
	logger   infra.Logger

	mu       sync.Mutex
	state    State
	session  *Session
	profile  *domain.Profile
	fetchSeq uint64
	subs     map[int]func(Snapshot)
	nextSub  int

	unsubscribe func()
	wg          sync.WaitGroup
}

// NewManager constructs a Manager and immediately subscribes to the
// authenticator, which delivers the current session synchronously.
func NewManager(authn Authenticator, profiles domain.ProfileRepository, logger infra.Logger) *Manager {
	m := &Manager{
		authn:    authn,
		profiles: profiles,
		logger:   logger,
		state:    StateInitializing,
		subs:     make(map[int]func(Snapshot)),
	}
	m.unsubscribe = authn.OnSessionChange(m.handleChange)
	return m
}

// handleChange is the only writer of session state. Each invocation bumps
// the fetch sequence so a profile response for a superseded session is
// discarded instead of overwriting newer state.
func (m *Manager) handleChange(session *Session) {
	m.mu.Lock()
	m.session = session
	m.fetchSeq++
	seq := m.fetchSeq
	if session == nil {
		m.state = StateAnonymous
		m.profile = nil
		m.mu.Unlock()
		m.notify()
		return
	}
	userID := session.UserID
	m.mu.Unlock()

	m.wg.Add(1)
	go m.loadProfile(seq, userID)
}

func (m *Manager) loadProfile(seq uint64, userID string) {
	defer m.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), profileFetchTimeout)
	defer cancel()

	profile, err := m.profiles.GetByID(ctx, userID)
	if err != nil {
		// A failed fetch leaves the session usable without a profile.
		m.logger.Error().Err(err).Str("user_id", userID).Msg("auth: profile fetch failed")
		profile = nil
	}

	m.mu.Lock()
	if seq != m.fetchSeq {
		m.mu.Unlock()
		return
	}
	m.state = StateAuthenticated
	m.profile = profile
	m.mu.Unlock()
	m.notify()
}

// SignIn delegates to the authenticator. It does not transition state
// itself; the resulting change notification does.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	_, err := m.authn.SignInWithPassword(ctx, email, password)
	return err
}

// SignUp delegates to the authenticator. When the account was created but
// no session came back, ErrConfirmEmail tells the user what to do next.
func (m *Manager) SignUp(ctx context.Context, email, password, name string) error {
	session, err := m.authn.SignUp(ctx, SignUpParams{Email: email, Password: password, Name: name})
	if err != nil {
		return err
	}
	if session == nil {
		return ErrConfirmEmail
	}
	return nil
}

// SignOut delegates to the authenticator, then clears the local profile
// immediately rather than waiting for the change notification, so readers
// never observe a signed-out session with a stale profile.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	token := ""
	if m.session != nil {
		token = m.session.Token
	}
	m.mu.Unlock()

	err := m.authn.SignOut(ctx, token)

	m.mu.Lock()
	m.profile = nil
	m.mu.Unlock()
	return err
}

// Snapshot returns the current state atomically.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Session: m.session, Profile: m.profile}
}

// Subscribe registers an observer invoked after every state change, and
// returns its remover. The observer is not called with the current state;
// read Snapshot first.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Close detaches from the authenticator and waits for any in-flight
// profile fetch to settle.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.wg.Wait()
}

func (m *Manager) notify() {
	snap := m.Snapshot()
	m.mu.Lock()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}
