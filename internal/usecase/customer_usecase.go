package usecase

import (
	"context"
	"errors"

	"github.com/redbank/bankmcp/internal/domain"
)

// CustomerUseCase handles customer lookup operations.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	retrier      Retrier
}

// NewCustomerUseCase creates a new CustomerUseCase. A nil retrier disables
// retries.
func NewCustomerUseCase(customerRepo CustomerRepository, retrier Retrier) *CustomerUseCase {
	if retrier == nil {
		retrier = noRetry{}
	}

	return &CustomerUseCase{
		customerRepo: customerRepo,
		retrier:      retrier,
	}
}

// GetCustomer looks up a customer by email or phone. At least one must be
// provided. Returns (nil, nil) when no customer matches.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, email, phone string) (*domain.Customer, error) {
	if email == "" && phone == "" {
		return nil, domain.NewInvalidInput("email/phone", "either email or phone must be provided")
	}

	var customer *domain.Customer
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		if email != "" {
			customer, err = uc.customerRepo.GetByEmail(ctx, email)
		} else {
			customer, err = uc.customerRepo.GetByPhone(ctx, phone)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, nil
		}
		return nil, domain.WrapDatabase("get_customer", err)
	}

	return customer, nil
}

// SearchCustomersByName finds customers whose name contains the given
// fragment, case-insensitively, ordered by name ascending.
func (uc *CustomerUseCase) SearchCustomersByName(ctx context.Context, name string) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		customers, err = uc.customerRepo.SearchByName(ctx, name)
		return err
	})
	if err != nil {
		return nil, domain.WrapDatabase("search_customers_by_name", err)
	}

	if customers == nil {
		customers = []*domain.Customer{}
	}

	return customers, nil
}
