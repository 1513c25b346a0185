// Package investments persists per-user holding records, scoped by the
// owning user id the same way the expenses repository is.
package investments

import (
	"context"

	"github.com/finledger/finledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, inv *models.Investment) (*models.Investment, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Investment, error)
	Delete(ctx context.Context, id, userID string) error
}
