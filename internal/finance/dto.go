package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

// TransactionFilters describe the inputs supported by the transactions list.
type TransactionFilters struct {
	AccountID *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
}

// TransactionRow is a ledger entry joined with its account for list views.
type TransactionRow struct {
	models.Transaction
	AccountName string `json:"account_name" gorm:"column:account_name"`
	AccountCode string `json:"account_code" gorm:"column:account_code"`
}

// CreateAccountInput captures the fields accepted when opening an account.
type CreateAccountInput struct {
	AccountCode string
	Name        string
	Type        enums.AccountType
	Balance     decimal.Decimal
}

// CreateTransactionInput captures the fields accepted when posting a ledger entry.
type CreateTransactionInput struct {
	TransactionDate *time.Time
	Amount          decimal.Decimal
	Description     string
	Type            enums.TransactionType
	AccountID       uuid.UUID
	OrderID         *uuid.UUID
	ProjectID       *uuid.UUID
}
