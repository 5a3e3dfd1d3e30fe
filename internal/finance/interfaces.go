package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

// Repository defines persistence operations for the ledger tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListAccounts(ctx context.Context) ([]models.Account, error)
	FindAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
	AdjustAccountBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	ListTransactions(ctx context.Context, filters TransactionFilters) ([]TransactionRow, error)
	CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
}
