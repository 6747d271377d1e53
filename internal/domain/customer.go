package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is an identity record maintained outside this service; the MCP
// layer only reads it.
type Customer struct {
	ID          int64      `json:"customer_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	AccountType string     `json:"account_type"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	CreatedDate time.Time  `json:"created_date"`
}

// CustomerSummary aggregates a customer's account position. The latest-*
// fields are nil for customers that have no statements yet.
type CustomerSummary struct {
	CustomerID          int64            `json:"customer_id"`
	Name                string           `json:"name"`
	Email               string           `json:"email,omitempty"`
	Phone               string           `json:"phone,omitempty"`
	Address             string           `json:"address,omitempty"`
	AccountType         string           `json:"account_type"`
	DateOfBirth         *time.Time       `json:"date_of_birth"`
	TotalStatements     int64            `json:"total_statements"`
	LatestStatementID   *int64           `json:"latest_statement_id"`
	LatestStatementDate *time.Time       `json:"latest_statement_date"`
	LatestBalance       *decimal.Decimal `json:"latest_balance"`
}
