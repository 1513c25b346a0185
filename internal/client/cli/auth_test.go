package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/finledger/finledger/internal/client/api"
	"github.com/finledger/finledger/internal/client/session"
)

type scriptedAPI struct {
	token      string
	loginErr   error
	registered []string
}

func (f *scriptedAPI) SetToken(token string) { f.token = token }
func (f *scriptedAPI) ClearToken()           { f.token = "" }

func (f *scriptedAPI) Register(ctx context.Context, username, email, password string) error {
	f.registered = append(f.registered, email)
	return nil
}

func (f *scriptedAPI) Login(ctx context.Context, email, password string) (string, *api.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return "tok123", &api.User{ID: "u1", Email: email, Username: "alice", Role: "user"}, nil
}

func (f *scriptedAPI) Validate(ctx context.Context) (*api.User, error) {
	return nil, api.ErrUnauthorized
}

type memStore struct{ token string }

func (s *memStore) Load() (string, error)   { return s.token, nil }
func (s *memStore) Save(token string) error { s.token = token; return nil }
func (s *memStore) Clear() error            { s.token = ""; return nil }

func stubInput(t *testing.T, lines []string, password string) {
	t.Helper()
	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText, getPassword = origText, origPassword
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(io.Writer) (string, error) {
		return password, nil
	}
}

func newTestApp(f *scriptedAPI, store *memStore) *App {
	return &App{
		session: session.NewSession(f, store),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func TestLogin_PersistsSession(t *testing.T) {
	f := &scriptedAPI{}
	store := &memStore{}
	a := newTestApp(f, store)
	a.session.Resolve(context.Background())

	stubInput(t, []string{"alice@x.com"}, "secret1")

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if store.token != "tok123" {
		t.Fatalf("token not persisted, store=%q", store.token)
	}
	if a.session.State() != session.StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", a.session.State())
	}
}

func TestLogin_BeforeResolveIsRejected(t *testing.T) {
	f := &scriptedAPI{}
	store := &memStore{}
	a := newTestApp(f, store)
	// No Resolve call: the session is still resolving.

	stubInput(t, []string{"alice@x.com"}, "secret1")

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("resolving gate must not surface as an error: %v", err)
	}
	if a.session.State() != session.StateResolving {
		t.Fatalf("state must stay resolving, got %v", a.session.State())
	}
	if store.token != "" {
		t.Fatalf("no token must be persisted")
	}
}

func TestLogin_Failure(t *testing.T) {
	f := &scriptedAPI{loginErr: api.ErrUnauthorized}
	store := &memStore{}
	a := newTestApp(f, store)
	a.session.Resolve(context.Background())

	stubInput(t, []string{"alice@x.com"}, "wrong")

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if a.session.State() != session.StateAnonymous {
		t.Fatalf("failed login must leave the session anonymous")
	}
}

func TestRegister_CreatesAccountWithoutSession(t *testing.T) {
	f := &scriptedAPI{}
	store := &memStore{}
	a := newTestApp(f, store)
	a.session.Resolve(context.Background())

	stubInput(t, []string{"alice", "alice@x.com"}, "secret1")

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if len(f.registered) != 1 || f.registered[0] != "alice@x.com" {
		t.Fatalf("unexpected registrations: %v", f.registered)
	}
	if a.session.State() != session.StateAnonymous {
		t.Fatalf("register must not establish a session")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	f := &scriptedAPI{}
	store := &memStore{}
	a := newTestApp(f, store)
	a.session.Resolve(context.Background())

	stubInput(t, []string{"alice@x.com"}, "secret1")
	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if store.token != "" || a.session.State() != session.StateAnonymous {
		t.Fatalf("logout must clear the token and the state")
	}
}
