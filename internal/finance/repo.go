package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a finance repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).
		Order("account_code ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *repository) FindAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repository) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *repository) AdjustAccountBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta)).Error
}

func (r *repository) ListTransactions(ctx context.Context, filters TransactionFilters) ([]TransactionRow, error) {
	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select("t.*, a.name AS account_name, a.account_code").
		Joins("JOIN accounts a ON t.account_id = a.id")

	if filters.AccountID != nil {
		query = query.Where("t.account_id = ?", *filters.AccountID)
	}
	if filters.DateFrom != nil {
		query = query.Where("t.transaction_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("t.transaction_date <= ?", *filters.DateTo)
	}

	var rows []TransactionRow
	err := query.Order("t.transaction_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}
