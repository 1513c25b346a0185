package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
)

func TestPostgresRepositoryManager_VendsRepositories(t *testing.T) {
	m := NewPostgresRepositoryManager()

	if m.Users(nil) == nil {
		t.Fatalf("Users returned nil")
	}
	if m.Expenses(nil) == nil {
		t.Fatalf("Expenses returned nil")
	}
	if m.Investments(nil) == nil {
		t.Fatalf("Investments returned nil")
	}
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	wantErr := errors.New("boom")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return wantErr
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), nil); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestRunMigrations_Success(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var called bool
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		return nil
	}

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if !called {
		t.Fatalf("goose.UpContext was not invoked")
	}
}
