package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/redbank/bankmcp/internal/domain"
)

// SearchLimit caps the number of rows a transaction search returns. There
// is no pagination token; callers cannot request more in one call.
const SearchLimit = 100

// TransactionUseCase handles transaction listing and search.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	retrier         Retrier
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository, retrier Retrier) *TransactionUseCase {
	if retrier == nil {
		retrier = noRetry{}
	}

	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		retrier:         retrier,
	}
}

// GetStatementTransactions lists a statement's transactions ordered by date
// descending.
func (uc *TransactionUseCase) GetStatementTransactions(ctx context.Context, statementID any) ([]*domain.Transaction, error) {
	id, err := domain.ValidateID(statementID, "statement_id")
	if err != nil {
		return nil, err
	}

	var transactions []*domain.Transaction
	err = uc.retrier.Retry(ctx, func() error {
		var err error
		transactions, err = uc.transactionRepo.ListByStatement(ctx, id)
		return err
	})
	if err != nil {
		return nil, domain.WrapDatabase("get_statement_transactions", err)
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	return transactions, nil
}

// GetCustomerTransactions lists a customer's transactions, optionally
// bounded by an inclusive date range. Bounds are validated for format only;
// a reversed range yields an empty list rather than an error.
func (uc *TransactionUseCase) GetCustomerTransactions(ctx context.Context, customerID any, startDate, endDate string) ([]*domain.Transaction, error) {
	id, err := domain.ValidateID(customerID, "customer_id")
	if err != nil {
		return nil, err
	}

	if startDate != "" {
		if startDate, err = domain.ValidateDate(startDate, "start_date"); err != nil {
			return nil, err
		}
	}
	if endDate != "" {
		if endDate, err = domain.ValidateDate(endDate, "end_date"); err != nil {
			return nil, err
		}
	}

	var transactions []*domain.Transaction
	err = uc.retrier.Retry(ctx, func() error {
		var err error
		transactions, err = uc.transactionRepo.ListByCustomer(ctx, id, startDate, endDate)
		return err
	})
	if err != nil {
		return nil, domain.WrapDatabase("get_customer_transactions", err)
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	return transactions, nil
}

// SearchTransactionsInput holds the raw tool arguments for a transaction
// search. All fields are optional.
type SearchTransactionsInput struct {
	Merchant        string
	TransactionType string
	MinAmount       *float64
	MaxAmount       *float64
	CustomerID      any
}

// SearchTransactions finds transactions matching the given filters, ordered
// by date descending and capped at SearchLimit rows. Amount bounds compare
// absolute values, so a -42.50 DEBIT matches min 42 / max 43.
func (uc *TransactionUseCase) SearchTransactions(ctx context.Context, input SearchTransactionsInput) ([]*domain.Transaction, error) {
	filter := SearchFilter{Merchant: input.Merchant}

	if input.TransactionType != "" {
		txType, err := domain.ValidateTransactionType(input.TransactionType, "transaction_type")
		if err != nil {
			return nil, err
		}
		filter.Type = txType
	}

	if input.MinAmount != nil {
		min := decimal.NewFromFloat(*input.MinAmount)
		filter.MinAmount = &min
	}
	if input.MaxAmount != nil {
		max := decimal.NewFromFloat(*input.MaxAmount)
		filter.MaxAmount = &max
	}

	if input.CustomerID != nil {
		id, err := domain.ValidateID(input.CustomerID, "customer_id")
		if err != nil {
			return nil, err
		}
		filter.CustomerID = &id
	}

	var transactions []*domain.Transaction
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		transactions, err = uc.transactionRepo.Search(ctx, filter)
		return err
	})
	if err != nil {
		return nil, domain.WrapDatabase("search_transactions", err)
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	return transactions, nil
}
