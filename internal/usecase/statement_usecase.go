package usecase

import (
	"context"

	"github.com/redbank/bankmcp/internal/domain"
)

// StatementUseCase handles statement listing.
type StatementUseCase struct {
	statementRepo StatementRepository
	retrier       Retrier
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(statementRepo StatementRepository, retrier Retrier) *StatementUseCase {
	if retrier == nil {
		retrier = noRetry{}
	}

	return &StatementUseCase{
		statementRepo: statementRepo,
		retrier:       retrier,
	}
}

// GetCustomerStatements lists a customer's statements ordered by period
// start descending. A customer with no statements yields an empty list.
func (uc *StatementUseCase) GetCustomerStatements(ctx context.Context, customerID any) ([]*domain.Statement, error) {
	id, err := domain.ValidateID(customerID, "customer_id")
	if err != nil {
		return nil, err
	}

	var statements []*domain.Statement
	err = uc.retrier.Retry(ctx, func() error {
		var err error
		statements, err = uc.statementRepo.ListByCustomer(ctx, id)
		return err
	})
	if err != nil {
		return nil, domain.WrapDatabase("get_customer_statements", err)
	}

	if statements == nil {
		statements = []*domain.Statement{}
	}

	return statements, nil
}
