package repomanager

import (
	"context"
	"database/sql"

	"github.com/finledger/finledger/internal/dbx"
	"github.com/finledger/finledger/internal/server/repositories/expenses"
	"github.com/finledger/finledger/internal/server/repositories/investments"
	"github.com/finledger/finledger/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	Investments(db dbx.DBTX) investments.Repository
}
