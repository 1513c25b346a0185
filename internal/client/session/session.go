// Package session holds the client-side authentication state: the current
// user, the persisted token, and the transitions between resolving,
// authenticated, and anonymous.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/finledger/finledger/internal/client/api"
)

// ErrResolving is returned by Login and Register while the startup token
// resolution is still in flight. Serializing the two avoids a stale
// anonymous result clobbering a fresh login.
var ErrResolving = errors.New("session is still resolving")

type State string

const (
	StateResolving     State = "resolving"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// API is the backend surface the session depends on. *api.Client satisfies it.
type API interface {
	SetToken(token string)
	ClearToken()
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (string, *api.User, error)
	Validate(ctx context.Context) (*api.User, error)
}

// TokenStore persists the session token between runs. An empty load means
// anonymous.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Session is the client session state machine. All state is guarded by the
// mutex; observers registered with Subscribe are notified outside the lock.
type Session struct {
	api   API
	store TokenStore

	mu          sync.Mutex
	state       State
	user        *api.User
	resolved    bool
	subscribers []func(State)
}

func NewSession(apiClient API, store TokenStore) *Session {
	return &Session{
		api:   apiClient,
		store: store,
		state: StateResolving,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated user, or nil.
func (s *Session) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Subscribe registers fn to be called on every state change. Notifications
// run synchronously on the goroutine performing the transition.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// setState applies a transition and returns the observers to notify. When
// onlyFromResolving is set the transition is dropped unless the session is
// still resolving, so a late resolve result cannot clobber newer state.
func (s *Session) setState(state State, user *api.User, onlyFromResolving bool) []func(State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if onlyFromResolving && s.state != StateResolving {
		return nil
	}
	s.state = state
	s.user = user

	subs := make([]func(State), len(s.subscribers))
	copy(subs, s.subscribers)
	return subs
}

func notify(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}

// Resolve turns a previously persisted token into a session. A stored token
// that validates transitions to authenticated; any failure (absent token,
// network, expired, forged) clears the store and transitions to anonymous.
// Login and Register are rejected until Resolve has completed once.
func (s *Session) Resolve(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.resolved = true
		s.mu.Unlock()
	}()

	token, err := s.store.Load()
	if err != nil || token == "" {
		notify(s.setState(StateAnonymous, nil, true), StateAnonymous)
		return
	}

	s.api.SetToken(token)
	user, err := s.api.Validate(ctx)
	if err != nil {
		s.api.ClearToken()
		_ = s.store.Clear()
		notify(s.setState(StateAnonymous, nil, true), StateAnonymous)
		return
	}

	subs := s.setState(StateAuthenticated, user, true)
	if subs == nil {
		// Something else (a logout) won the race; drop the token again.
		s.api.ClearToken()
		_ = s.store.Clear()
		return
	}
	notify(subs, StateAuthenticated)
}

// Login authenticates, persists the returned token, and transitions to
// authenticated.
func (s *Session) Login(ctx context.Context, email, password string) (*api.User, error) {
	s.mu.Lock()
	resolved := s.resolved
	s.mu.Unlock()
	if !resolved {
		return nil, ErrResolving
	}

	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(token); err != nil {
		return nil, err
	}
	s.api.SetToken(token)

	notify(s.setState(StateAuthenticated, user, false), StateAuthenticated)
	return user, nil
}

// Register creates an account. No session is established; the caller logs
// in afterwards.
func (s *Session) Register(ctx context.Context, username, email, password string) error {
	s.mu.Lock()
	resolved := s.resolved
	s.mu.Unlock()
	if !resolved {
		return ErrResolving
	}

	return s.api.Register(ctx, username, email, password)
}

// Logout drops the persisted token and the in-memory user synchronously.
// Tokens are stateless, so no server call is needed.
func (s *Session) Logout() error {
	err := s.store.Clear()
	s.api.ClearToken()
	notify(s.setState(StateAnonymous, nil, false), StateAnonymous)
	return err
}
