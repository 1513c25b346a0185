package investments

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finledger/finledger/internal/common"
	"github.com/finledger/finledger/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestCreate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	invested := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO investments")).
		WithArgs(sqlmock.AnyArg(), "u1", "index fund", "stocks", 1500.0, invested).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	repo := NewPostgresRepository(db)
	inv, err := repo.Create(context.Background(), &models.Investment{
		UserID:     "u1",
		Name:       "index fund",
		Category:   "stocks",
		Amount:     1500.0,
		InvestedAt: invested,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if inv.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestListByUser_Empty(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM investments")).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "category", "amount", "invested_at", "created_at"}))

	repo := NewPostgresRepository(db)
	list, err := repo.ListByUser(context.Background(), "u2")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM investments")).
		WithArgs("i1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	err := repo.Delete(context.Background(), "i1", "u1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
