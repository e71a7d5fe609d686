package client

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gatherly/gatherly-go/internal/model"
)

// State describes the session store lifecycle.
type State string

const (
	// StateUnknown is the state before Hydrate has run; views should
	// not render user-specific content while the state is unknown.
	StateUnknown State = "unknown"
	// StateAnonymous means no valid session exists.
	StateAnonymous State = "anonymous"
	// StateAuthenticated means both a token and a user are held.
	StateAuthenticated State = "authenticated"
)

// SessionStore is the single writer of the current session. It owns
// the in-memory token and user, keeps them synchronized with a
// CredentialStore, and exposes the login, register and logout
// operations.
type SessionStore struct {
	mu    sync.Mutex
	api   *Client
	creds CredentialStore
	state State
	token string
	user  *model.UserResponse
}

// NewSessionStore creates a SessionStore in StateUnknown. Call Hydrate
// before rendering anything that depends on the session.
func NewSessionStore(api *Client, creds CredentialStore) *SessionStore {
	return &SessionStore{
		api:   api,
		creds: creds,
		state: StateUnknown,
	}
}

// Hydrate loads the persisted token and user. Only when both are
// present does the store become authenticated; partial state resolves
// to anonymous.
func (s *SessionStore) Hydrate() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.creds.Token()
	user, ok := s.creds.User()
	if token == "" || !ok {
		s.state = StateAnonymous
		s.token = ""
		s.user = nil
		return s.state
	}

	s.token = token
	s.user = &user
	s.state = StateAuthenticated
	return s.state
}

// Login authenticates with the backend and, on success, persists the
// session and transitions to StateAuthenticated. On failure no state
// changes and the error carries a displayable message.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.Save(resp.Token, resp.User); err != nil {
		return err
	}

	s.token = resp.Token
	s.user = &resp.User
	s.state = StateAuthenticated
	return nil
}

// Register creates an account and then logs in with the same
// credentials. If the account is created but the follow-up login
// fails, the error surfaces to the caller; the account still exists
// server-side and no rollback is attempted.
func (s *SessionStore) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.api.Register(ctx, name, email, password); err != nil {
		return err
	}
	return s.Login(ctx, email, password)
}

// Logout clears the persisted and in-memory session. It is local only
// and always leaves the store anonymous, even if removing the
// persisted files fails.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		slog.Warn("clearing persisted credentials failed", "error", err)
	}

	s.token = ""
	s.user = nil
	s.state = StateAnonymous
}

// State returns the current lifecycle state.
func (s *SessionStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether a complete session is held: a token
// and a user, never one without the other.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// CurrentUser returns the session's user for display, if authenticated.
func (s *SessionStore) CurrentUser() (model.UserResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.UserResponse{}, false
	}
	return *s.user, true
}

// Token returns the held bearer token, or "" when anonymous. It lets a
// SessionStore serve as a TokenSource directly.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
