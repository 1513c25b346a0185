package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/finledger/finledger/internal/server/models"
	"github.com/finledger/finledger/internal/server/repositories/repomanager"
)

// InvestmentService manages a user's holding records, scoped the same way
// ExpenseService is.
type InvestmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewInvestmentService(db *sql.DB, m repomanager.RepositoryManager) *InvestmentService {
	return &InvestmentService{db: db, repomanager: m}
}

func (s *InvestmentService) Add(ctx context.Context, userID, name, category string, amount float64, investedAt time.Time) (*models.Investment, error) {
	inv := &models.Investment{
		UserID:     userID,
		Name:       name,
		Category:   category,
		Amount:     amount,
		InvestedAt: investedAt,
	}

	repo := s.repomanager.Investments(s.db)
	inv, err := repo.Create(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("error creating investment: %w", err)
	}
	return inv, nil
}

func (s *InvestmentService) List(ctx context.Context, userID string) ([]*models.Investment, error) {
	repo := s.repomanager.Investments(s.db)
	list, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing investments: %w", err)
	}
	return list, nil
}

func (s *InvestmentService) Remove(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Investments(s.db)
	return repo.Delete(ctx, id, userID)
}
