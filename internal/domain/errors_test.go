package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapDatabase(t *testing.T) {
	t.Run("nil error passes through", func(t *testing.T) {
		if err := WrapDatabase("get_customer", nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("store error is wrapped with operation name", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := WrapDatabase("get_customer", cause)

		var dbErr *DatabaseError
		if !errors.As(err, &dbErr) {
			t.Fatalf("expected DatabaseError, got %T", err)
		}
		if dbErr.Op != "get_customer" {
			t.Errorf("expected op get_customer, got %q", dbErr.Op)
		}
		if !errors.Is(err, cause) {
			t.Error("expected wrapped error to match cause via errors.Is")
		}
	})

	t.Run("invalid input is not reclassified", func(t *testing.T) {
		cause := NewInvalidInput("start_date", "must be in YYYY-MM-DD format")
		err := WrapDatabase("get_customer_transactions", cause)

		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidInputError, got %T", err)
		}
		var dbErr *DatabaseError
		if errors.As(err, &dbErr) {
			t.Error("invalid input must not be wrapped as DatabaseError")
		}
	})

	t.Run("wrapped invalid input survives further wrapping", func(t *testing.T) {
		cause := fmt.Errorf("while validating: %w", NewInvalidInput("customer_id", "is required"))
		err := WrapDatabase("get_customer_summary", cause)

		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidInputError, got %T", err)
		}
	})
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := NewInvalidInput("customer_id", "must be an integer, got float: %v", 1.5)

	want := "customer_id must be an integer, got float: 1.5"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
