package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/usecase"
	"github.com/redbank/bankmcp/internal/usecase/mocks"
)

func TestCustomerUseCase_GetCustomer(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		phone       string
		setupMocks  func(*mocks.MockCustomerRepository)
		wantErr     bool
		wantInvalid bool
		wantNil     bool
	}{
		{
			name:  "lookup by email",
			email: "alice@example.com",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.Customer, error) {
					if email != "alice@example.com" {
						t.Errorf("unexpected email %q", email)
					}
					return &domain.Customer{ID: 1, Name: "Alice Smith", Email: email}, nil
				}
			},
		},
		{
			name:  "lookup by phone",
			phone: "555-0100",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.GetByPhoneFunc = func(ctx context.Context, phone string) (*domain.Customer, error) {
					return &domain.Customer{ID: 2, Name: "Bob Jones", Phone: phone}, nil
				}
			},
		},
		{
			name:  "email preferred when both given",
			email: "alice@example.com",
			phone: "555-0100",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.Customer, error) {
					return &domain.Customer{ID: 1, Name: "Alice Smith"}, nil
				}
				repo.GetByPhoneFunc = func(ctx context.Context, phone string) (*domain.Customer, error) {
					t.Error("phone lookup must not run when email is given")
					return nil, nil
				}
			},
		},
		{
			name:        "neither email nor phone",
			setupMocks:  func(*mocks.MockCustomerRepository) {},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:  "not found yields empty result",
			email: "nobody@example.com",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.Customer, error) {
					return nil, domain.ErrCustomerNotFound
				}
			},
			wantNil: true,
		},
		{
			name:  "store failure wrapped as database error",
			email: "alice@example.com",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.Customer, error) {
					return nil, errors.New("connection reset")
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCustomerRepository()
			tt.setupMocks(repo)

			uc := usecase.NewCustomerUseCase(repo, nil)
			customer, err := uc.GetCustomer(context.Background(), tt.email, tt.phone)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var invalid *domain.InvalidInputError
				if got := errors.As(err, &invalid); got != tt.wantInvalid {
					t.Errorf("InvalidInputError = %v, want %v (err: %v)", got, tt.wantInvalid, err)
				}
				if !tt.wantInvalid {
					var dbErr *domain.DatabaseError
					if !errors.As(err, &dbErr) {
						t.Fatalf("expected DatabaseError, got %T", err)
					}
					if dbErr.Op != "get_customer" {
						t.Errorf("expected op get_customer, got %q", dbErr.Op)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if customer != nil {
					t.Errorf("expected nil customer, got %+v", customer)
				}
				return
			}
			if customer == nil {
				t.Fatal("expected customer, got nil")
			}
		})
	}
}

func TestCustomerUseCase_SearchCustomersByName(t *testing.T) {
	t.Run("no matches yields empty list", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepository()
		repo.SearchByNameFunc = func(ctx context.Context, name string) ([]*domain.Customer, error) {
			return nil, nil
		}

		uc := usecase.NewCustomerUseCase(repo, nil)
		customers, err := uc.SearchCustomersByName(context.Background(), "nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customers == nil {
			t.Fatal("expected empty list, got nil")
		}
		if len(customers) != 0 {
			t.Errorf("expected 0 customers, got %d", len(customers))
		}
	})

	t.Run("store failure wrapped with operation name", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepository()
		repo.SearchByNameFunc = func(ctx context.Context, name string) ([]*domain.Customer, error) {
			return nil, errors.New("timeout")
		}

		uc := usecase.NewCustomerUseCase(repo, nil)
		_, err := uc.SearchCustomersByName(context.Background(), "smith")

		var dbErr *domain.DatabaseError
		if !errors.As(err, &dbErr) {
			t.Fatalf("expected DatabaseError, got %v", err)
		}
		if dbErr.Op != "search_customers_by_name" {
			t.Errorf("expected op search_customers_by_name, got %q", dbErr.Op)
		}
	})

	t.Run("repository accessed through the retrier", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepository()
		repo.SearchByNameFunc = func(ctx context.Context, name string) ([]*domain.Customer, error) {
			return []*domain.Customer{{ID: 1, Name: "Alice Smith"}}, nil
		}
		retrier := mocks.NewMockRetrier()

		uc := usecase.NewCustomerUseCase(repo, retrier)
		if _, err := uc.SearchCustomersByName(context.Background(), "smith"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if retrier.Calls != 1 {
			t.Errorf("expected 1 retrier call, got %d", retrier.Calls)
		}
	})
}
