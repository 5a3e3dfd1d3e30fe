package enums

import "fmt"

// TransactionType marks a ledger entry as a debit or a credit.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeDebit || t == TransactionTypeCredit
}

// ParseTransactionType converts raw input into a TransactionType.
func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(value) {
	case TransactionTypeDebit:
		return TransactionTypeDebit, nil
	case TransactionTypeCredit:
		return TransactionTypeCredit, nil
	default:
		return "", fmt.Errorf("invalid transaction type %q", value)
	}
}
