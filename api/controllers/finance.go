package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/api/responses"
	"github.com/calderasoft/erp-backend/api/validators"
	"github.com/calderasoft/erp-backend/internal/finance"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

// FinanceListAccounts returns the chart of accounts ordered by account code.
func FinanceListAccounts(svc finance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "finance service unavailable"))
			return
		}

		accounts, err := svc.ListAccounts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, accounts, false)
	}
}

type accountCreateRequest struct {
	AccountCode string          `json:"account_code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Balance     decimal.Decimal `json:"balance"`
}

func (req accountCreateRequest) toInput() (finance.CreateAccountInput, error) {
	accountType, err := enums.ParseAccountType(strings.TrimSpace(req.Type))
	if err != nil {
		return finance.CreateAccountInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid account type")
	}
	return finance.CreateAccountInput{
		AccountCode: strings.TrimSpace(req.AccountCode),
		Name:        strings.TrimSpace(req.Name),
		Type:        accountType,
		Balance:     req.Balance,
	}, nil
}

// FinanceCreateAccount opens a new ledger account.
func FinanceCreateAccount(svc finance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "finance service unavailable"))
			return
		}

		var payload accountCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		account, err := svc.CreateAccount(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, account)
	}
}

// FinanceListTransactions returns ledger entries joined with their account,
// optionally filtered by account and date range.
func FinanceListTransactions(svc finance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "finance service unavailable"))
			return
		}

		accountID, err := validators.ParseQueryUUID(r, "accountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := finance.TransactionFilters{AccountID: accountID}
		if from, err := validators.ParseQueryDate(r, "startDate", time.Time{}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if !from.IsZero() {
			filters.DateFrom = &from
		}
		if to, err := validators.ParseQueryDate(r, "endDate", time.Time{}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if !to.IsZero() {
			filters.DateTo = &to
		}

		transactions, err := svc.ListTransactions(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, transactions, false)
	}
}

type transactionCreateRequest struct {
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Type            string          `json:"type" validate:"required"`
	AccountID       uuid.UUID       `json:"account_id" validate:"required"`
	OrderID         *uuid.UUID      `json:"order_id,omitempty"`
	ProjectID       *uuid.UUID      `json:"project_id,omitempty"`
}

func (req transactionCreateRequest) toInput() (finance.CreateTransactionInput, error) {
	txnType, err := enums.ParseTransactionType(strings.TrimSpace(req.Type))
	if err != nil {
		return finance.CreateTransactionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transaction type")
	}
	return finance.CreateTransactionInput{
		TransactionDate: req.TransactionDate,
		Amount:          req.Amount,
		Description:     strings.TrimSpace(req.Description),
		Type:            txnType,
		AccountID:       req.AccountID,
		OrderID:         req.OrderID,
		ProjectID:       req.ProjectID,
	}, nil
}

// FinanceCreateTransaction posts a ledger entry and moves the account balance.
func FinanceCreateTransaction(svc finance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "finance service unavailable"))
			return
		}

		var payload transactionCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		txn, err := svc.CreateTransaction(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, txn)
	}
}
