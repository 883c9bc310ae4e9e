package bonita

import (
	"context"
	"sync"
)

type loginFunc func(ctx context.Context, username, password string) (Session, error)

// sessionStore caches the single session of a Client. Logins happen under the
// lock so concurrent callers observing the same stale session trigger one
// login between them.
type sessionStore struct {
	login loginFunc

	mu      sync.Mutex
	current Session
}

func newSessionStore(login loginFunc) *sessionStore {
	return &sessionStore{login: login}
}

func (s *sessionStore) get(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.IsZero() {
		return s.current, nil
	}
	return s.loginLocked(ctx)
}

func (s *sessionStore) refresh(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	return s.loginLocked(ctx)
}

// refreshStale logs in again unless another caller already replaced stale.
func (s *sessionStore) refreshStale(ctx context.Context, stale Session) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.IsZero() && s.current != stale {
		return s.current, nil
	}
	s.current = Session{}
	return s.loginLocked(ctx)
}

func (s *sessionStore) invalidate() {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()
}

func (s *sessionStore) loginLocked(ctx context.Context) (Session, error) {
	session, err := s.login(ctx, "", "")
	if err != nil {
		return Session{}, err
	}
	s.current = session
	return session, nil
}

// Session returns the cached session, logging in first when none is cached.
func (c *Client) Session(ctx context.Context) (Session, error) {
	return c.sessions.get(ctx)
}

// RefreshSession discards the cached session and logs in again.
func (c *Client) RefreshSession(ctx context.Context) (Session, error) {
	return c.sessions.refresh(ctx)
}

// InvalidateSession drops the cached session without logging in. The next
// call logs in lazily.
func (c *Client) InvalidateSession() {
	c.sessions.invalidate()
}
