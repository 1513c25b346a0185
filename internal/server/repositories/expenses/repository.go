// Package expenses persists per-user spending records. Every query is
// scoped by the owning user id.
package expenses

import (
	"context"

	"github.com/finledger/finledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Expense) (*models.Expense, error)

	// ListByUser returns the user's expenses, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Expense, error)

	// Delete removes the expense only if it belongs to userID;
	// otherwise common.ErrorNotFound.
	Delete(ctx context.Context, id, userID string) error
}
