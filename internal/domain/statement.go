package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is a billing-period summary for one customer.
type Statement struct {
	ID           int64           `json:"statement_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	PeriodStart  time.Time       `json:"statement_period_start"`
	PeriodEnd    time.Time       `json:"statement_period_end"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedDate  time.Time       `json:"created_date"`
}

// StatementSummary is the per-statement aggregate: ending balance plus
// credit/debit counts and absolute-value totals. A statement with no
// transactions has zero counts and totals.
type StatementSummary struct {
	StatementID        int64           `json:"statement_id"`
	CustomerID         int64           `json:"customer_id"`
	CustomerName       string          `json:"customer_name"`
	PeriodStart        time.Time       `json:"statement_period_start"`
	PeriodEnd          time.Time       `json:"statement_period_end"`
	EndingBalance      decimal.Decimal `json:"ending_balance"`
	TotalTransactions  int64           `json:"total_transactions"`
	CreditTransactions int64           `json:"credit_transactions"`
	DebitTransactions  int64           `json:"debit_transactions"`
	TotalCredits       decimal.Decimal `json:"total_credits"`
	TotalDebits        decimal.Decimal `json:"total_debits"`
}
