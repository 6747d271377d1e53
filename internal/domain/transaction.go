package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

// Transaction is a single ledger entry on a statement. Amounts keep their
// stored sign; range filtering compares absolute values.
type Transaction struct {
	ID           int64           `json:"transaction_id"`
	StatementID  int64           `json:"statement_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"transaction_date"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	Type         TransactionType `json:"transaction_type"`
	Merchant     string          `json:"merchant,omitempty"`
}
