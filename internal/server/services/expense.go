package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/finledger/finledger/internal/server/models"
	"github.com/finledger/finledger/internal/server/repositories/repomanager"
)

// ExpenseService manages a user's spending records. Every operation takes
// the authenticated user id from the caller; rows belonging to other users
// are invisible.
type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m}
}

func (s *ExpenseService) Add(ctx context.Context, userID, title string, amount float64, category string, spentAt time.Time) (*models.Expense, error) {
	e := &models.Expense{
		UserID:   userID,
		Title:    title,
		Amount:   amount,
		Category: category,
		SpentAt:  spentAt,
	}

	repo := s.repomanager.Expenses(s.db)
	e, err := repo.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}
	return e, nil
}

func (s *ExpenseService) List(ctx context.Context, userID string) ([]*models.Expense, error) {
	repo := s.repomanager.Expenses(s.db)
	list, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}
	return list, nil
}

// Remove deletes the expense if it belongs to userID; otherwise the
// repository reports common.ErrorNotFound, which is passed through.
func (s *ExpenseService) Remove(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Expenses(s.db)
	return repo.Delete(ctx, id, userID)
}
