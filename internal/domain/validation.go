package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format accepted by tool arguments.
const DateLayout = "2006-01-02"

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form and
// returns it unchanged. Pure: same input, same result.
func ValidateDate(s, param string) (string, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", NewInvalidInput(param,
			"must be in YYYY-MM-DD format (e.g., 2025-01-15), got: %s", s)
	}

	return s, nil
}

// ValidateID normalizes an identifier supplied as a native integer, a JSON
// number, or a string of digits. Anything else is rejected with the
// parameter name and the actual type.
func ValidateID(v any, param string) (int64, error) {
	switch id := v.(type) {
	case int:
		return int64(id), nil
	case int32:
		return int64(id), nil
	case int64:
		return id, nil
	case float64:
		// JSON numbers decode as float64; only integral values are ids.
		if id != math.Trunc(id) {
			return 0, NewInvalidInput(param, "must be an integer, got float: %v", id)
		}
		return int64(id), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, NewInvalidInput(param, "must be an integer or numeric string, got: %q", id)
		}
		return n, nil
	case nil:
		return 0, NewInvalidInput(param, "is required")
	default:
		return 0, NewInvalidInput(param, "must be an integer or numeric string, got %T", v)
	}
}

// ValidateTransactionType normalizes s to upper case and checks it against
// the allowed transaction types.
func ValidateTransactionType(s, param string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TransactionCredit, TransactionDebit:
		return t, nil
	}

	return "", NewInvalidInput(param, "must be CREDIT or DEBIT, got: %s", s)
}
