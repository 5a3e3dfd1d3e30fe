package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

func setupFinanceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	accounts := `
CREATE TABLE IF NOT EXISTS accounts (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  account_code TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  balance NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	transactions := `
CREATE TABLE IF NOT EXISTS transactions (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  transaction_date DATETIME NOT NULL,
  amount NUMERIC NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL,
  account_id TEXT NOT NULL,
  order_id TEXT,
  project_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`

	require.NoError(t, db.Exec(accounts).Error)
	require.NoError(t, db.Exec(transactions).Error)

	t.Cleanup(func() {
		db.Exec("DELETE FROM transactions")
		db.Exec("DELETE FROM accounts")
	})

	return db
}

func seedAccount(t *testing.T, db *gorm.DB, code string, accountType enums.AccountType, balance decimal.Decimal) *models.Account {
	t.Helper()
	account := &models.Account{
		ID:          uuid.New(),
		AccountCode: code,
		Name:        "Account " + code,
		Type:        accountType,
		Balance:     balance,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestListAccountsOrderedByCode(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewRepository(db)

	seedAccount(t, db, "4000", enums.AccountTypeRevenue, decimal.Zero)
	seedAccount(t, db, "1000", enums.AccountTypeAsset, decimal.Zero)
	seedAccount(t, db, "2000", enums.AccountTypeLiability, decimal.Zero)

	accounts, err := repo.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "1000", accounts[0].AccountCode)
	assert.Equal(t, "2000", accounts[1].AccountCode)
	assert.Equal(t, "4000", accounts[2].AccountCode)
}

func TestAdjustAccountBalance(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewRepository(db)

	account := seedAccount(t, db, "1000", enums.AccountTypeAsset, decimal.NewFromInt(100))

	require.NoError(t, repo.AdjustAccountBalance(context.Background(), account.ID, decimal.NewFromInt(50)))
	require.NoError(t, repo.AdjustAccountBalance(context.Background(), account.ID, decimal.NewFromInt(-30)))

	reloaded, err := repo.FindAccountByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.NewFromInt(120)), "expected 120, got %s", reloaded.Balance)
}

func TestListTransactionsFilters(t *testing.T) {
	db := setupFinanceTestDB(t)
	repo := NewRepository(db)

	cash := seedAccount(t, db, "1000", enums.AccountTypeAsset, decimal.Zero)
	revenue := seedAccount(t, db, "4000", enums.AccountTypeRevenue, decimal.Zero)

	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, txn := range []*models.Transaction{
		{ID: uuid.New(), TransactionDate: jan, Amount: decimal.NewFromInt(100), Type: enums.TransactionTypeDebit, AccountID: cash.ID},
		{ID: uuid.New(), TransactionDate: mar, Amount: decimal.NewFromInt(200), Type: enums.TransactionTypeCredit, AccountID: revenue.ID},
	} {
		_, err := repo.CreateTransaction(context.Background(), txn)
		require.NoError(t, err)
	}

	all, err := repo.ListTransactions(context.Background(), TransactionFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	assert.Equal(t, "4000", all[0].AccountCode)
	assert.Equal(t, "Account 4000", all[0].AccountName)

	byAccount, err := repo.ListTransactions(context.Background(), TransactionFilters{AccountID: &cash.ID})
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, cash.ID, byAccount[0].AccountID)

	feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	since, err := repo.ListTransactions(context.Background(), TransactionFilters{DateFrom: &feb})
	require.NoError(t, err)
	require.Len(t, since, 1)
	assert.Equal(t, revenue.ID, since[0].AccountID)
}
