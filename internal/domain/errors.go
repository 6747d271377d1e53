package domain

import (
	"errors"
	"fmt"
)

// Not-found sentinels. Use cases translate these into empty results; they
// never cross the tool boundary.
var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrStatementNotFound = errors.New("statement not found")
)

// InvalidInputError reports a caller-supplied argument that failed
// validation. The caller can correct the input and retry.
type InvalidInputError struct {
	Param   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Message)
}

// NewInvalidInput creates an InvalidInputError for the named parameter.
func NewInvalidInput(param, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Param: param, Message: fmt.Sprintf(format, args...)}
}

// DatabaseError reports a backing-store failure during a named operation.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error in %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// WrapDatabase wraps err as a DatabaseError for operation op. Returns nil
// when err is nil. InvalidInputError values pass through unchanged so that
// exactly two error kinds reach the tool boundary.
func WrapDatabase(op string, err error) error {
	if err == nil {
		return nil
	}

	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return err
	}

	return &DatabaseError{Op: op, Err: err}
}
