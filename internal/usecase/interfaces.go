package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/redbank/bankmcp/internal/domain"
)

// ErrCacheMiss is returned by Cache.Get when no value is stored for the key.
var ErrCacheMiss = errors.New("cache miss")

// SearchFilter holds the optional criteria for a transaction search. Amount
// bounds compare the absolute value of the stored amount.
type SearchFilter struct {
	Merchant   string
	Type       domain.TransactionType
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	CustomerID *int64
}

// CustomerRepository defines read access to customer records.
type CustomerRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Customer, error)
	Summary(ctx context.Context, customerID int64) (*domain.CustomerSummary, error)
}

// StatementRepository defines read access to statement records.
type StatementRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Statement, error)
	Summary(ctx context.Context, statementID int64) (*domain.StatementSummary, error)
}

// TransactionRepository defines read access to transaction records.
type TransactionRepository interface {
	ListByStatement(ctx context.Context, statementID int64) ([]*domain.Transaction, error)
	ListByCustomer(ctx context.Context, customerID int64, startDate, endDate string) ([]*domain.Transaction, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Transaction, error)
}

// Cache defines the read-through cache used for summary results.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient backing-store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// noRetry is the fallback Retrier when none is injected.
type noRetry struct{}

func (noRetry) Retry(_ context.Context, operation func() error) error {
	return operation()
}
