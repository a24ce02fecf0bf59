package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/avelle/storefront-cli/internal/ports"
)

// SessionStore owns the client's cached session. It cycles between anonymous
// and authenticated indefinitely; login and register resolve to a success
// flag and report failures through the notifier rather than returning errors.
type SessionStore struct {
	api      ports.AuthAPI
	sessions ports.SessionRepository
	notifier ports.Notifier

	mu      sync.RWMutex
	session domain.Session
	loading bool
}

func NewSessionStore(api ports.AuthAPI, sessions ports.SessionRepository, notifier ports.Notifier) *SessionStore {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}

	return &SessionStore{
		api:      api,
		sessions: sessions,
		notifier: notifier,
	}
}

// Initialize hydrates the persisted record. It never contacts the server: a
// revoked token goes undetected until the next API call returns a 401.
func (s *SessionStore) Initialize(ctx context.Context) error {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return nil
}

// Login authenticates against the remote API. On success the identity and
// token are set atomically and persisted; on failure the held session is left
// exactly as it was.
func (s *SessionStore) Login(ctx context.Context, creds domain.Credentials) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	auth, err := s.api.Login(ctx, creds)
	if err != nil {
		s.notifier.Error(domain.UserMessage(err, "Login failed"))
		return false
	}

	identity := auth.Identity
	session := domain.Session{Identity: &identity, Token: auth.Token}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, session); err != nil {
		s.notifier.Error(fmt.Sprintf("Signed in, but the session could not be saved: %v", err))
	}

	s.notifier.Success(fmt.Sprintf("Welcome back, %s!", identity.FirstName))
	return true
}

// Register creates the account only. It never authenticates the caller; a
// separate login is required.
func (s *SessionStore) Register(ctx context.Context, reg domain.Registration) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.api.Register(ctx, reg); err != nil {
		s.notifier.Error(domain.UserMessage(err, "Registration failed"))
		return false
	}

	s.notifier.Success("Registration successful! Please log in.")
	return true
}

// Logout clears the held and persisted session unconditionally. The remote
// logout call is best-effort; its outcome never blocks local clearing.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		s.notifier.Error(fmt.Sprintf("Signed out, but the saved session could not be removed: %v", err))
	}
	_ = s.api.Logout(ctx)

	s.notifier.Success("Logged out successfully")
}

// Refresh replaces the held identity with the server's current profile.
func (s *SessionStore) Refresh(ctx context.Context) error {
	identity, err := s.api.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("fetch current user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Identity = &identity

	return nil
}

func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *SessionStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Authenticated()
}

func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionStore) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}
