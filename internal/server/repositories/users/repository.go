// Package users contains the credential store: persistence of user
// identity records and their password hashes.
package users

import (
	"context"

	"github.com/finledger/finledger/internal/server/models"
)

type Repository interface {
	// Create inserts a new user record and returns it with the generated id.
	// A duplicate email yields common.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the record for the given email (case-insensitive),
	// or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the record for the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
