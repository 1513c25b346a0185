package investments

import (
	"context"
	"fmt"

	"github.com/finledger/finledger/internal/common"
	"github.com/finledger/finledger/internal/dbx"
	"github.com/finledger/finledger/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, inv *models.Investment) (*models.Investment, error) {

	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO investments (id, user_id, name, category, amount, invested_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		inv.ID, inv.UserID, inv.Name, inv.Category, inv.Amount, inv.InvestedAt).Scan(&inv.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return inv, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Investment, error) {
	query :=
		`SELECT id, user_id, name, category, amount, invested_at, created_at FROM investments
		 WHERE user_id = $1
		 ORDER BY invested_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Investment, 0)
	for rows.Next() {
		inv := &models.Investment{}
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.Category, &inv.Amount, &inv.InvestedAt, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query :=
		`DELETE FROM investments
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
