package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db"
	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines ledger operations beyond repository reads.
type Service interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, input CreateAccountInput) (*models.Account, error)
	ListTransactions(ctx context.Context, filters TransactionFilters) ([]TransactionRow, error)
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds a finance service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("finance repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list accounts")
	}
	return accounts, nil
}

func (s *service) CreateAccount(ctx context.Context, input CreateAccountInput) (*models.Account, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid account type")
	}

	account := &models.Account{
		AccountCode: input.AccountCode,
		Name:        input.Name,
		Type:        input.Type,
		Balance:     input.Balance,
	}

	created, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "account code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create account")
	}
	return created, nil
}

func (s *service) ListTransactions(ctx context.Context, filters TransactionFilters) ([]TransactionRow, error) {
	rows, err := s.repo.ListTransactions(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}
	return rows, nil
}

// CreateTransaction posts a ledger entry and moves the account balance in the
// same database transaction: credit adds to the balance, debit subtracts.
func (s *service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid transaction type")
	}
	if input.AccountID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account id required")
	}
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}

	when := time.Now().UTC()
	if input.TransactionDate != nil {
		when = *input.TransactionDate
	}

	txn := &models.Transaction{
		TransactionDate: when,
		Amount:          input.Amount,
		Description:     input.Description,
		Type:            input.Type,
		AccountID:       input.AccountID,
		OrderID:         input.OrderID,
		ProjectID:       input.ProjectID,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.FindAccountByID(ctx, input.AccountID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
		}

		if _, err := repo.CreateTransaction(ctx, txn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create transaction")
		}

		delta := input.Amount
		if input.Type == enums.TransactionTypeDebit {
			delta = delta.Neg()
		}
		if err := repo.AdjustAccountBalance(ctx, input.AccountID, delta); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adjust account balance")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}
