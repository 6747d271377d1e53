package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/usecase"
)

const transactionSelect = `
	SELECT t.transaction_id, t.statement_id, s.customer_id, c.name,
	       t.transaction_date, t.amount, t.description,
	       t.transaction_type, t.merchant
	FROM transactions t
	JOIN statements s ON t.statement_id = s.statement_id
	JOIN customers c ON s.customer_id = c.customer_id`

// customerTransactionsQuery builds the customer transaction listing with
// optional inclusive date bounds. Empty bounds are omitted; a reversed range
// produces a query no row can satisfy.
func customerTransactionsQuery(customerID int64, startDate, endDate string) (string, []any) {
	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString("\n\tWHERE s.customer_id = $1")

	args := []any{customerID}

	if startDate != "" {
		args = append(args, mustDate(startDate))
		fmt.Fprintf(&sb, " AND t.transaction_date::date >= $%d", len(args))
	}

	if endDate != "" {
		args = append(args, mustDate(endDate))
		fmt.Fprintf(&sb, " AND t.transaction_date::date <= $%d", len(args))
	}

	sb.WriteString("\n\tORDER BY t.transaction_date DESC")

	return sb.String(), args
}

// searchTransactionsQuery builds the filtered transaction search. Amount
// bounds compare ABS(amount); merchant matching is a case-insensitive
// substring match. The row cap cannot be overridden by the caller.
func searchTransactionsQuery(filter usecase.SearchFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString("\n\tWHERE 1=1")

	var args []any

	if filter.Merchant != "" {
		args = append(args, "%"+filter.Merchant+"%")
		fmt.Fprintf(&sb, " AND LOWER(t.merchant) LIKE LOWER($%d)", len(args))
	}

	if filter.Type != "" {
		args = append(args, string(filter.Type))
		fmt.Fprintf(&sb, " AND t.transaction_type = $%d", len(args))
	}

	if filter.MinAmount != nil {
		args = append(args, decimalToNumeric(*filter.MinAmount))
		fmt.Fprintf(&sb, " AND ABS(t.amount) >= $%d", len(args))
	}

	if filter.MaxAmount != nil {
		args = append(args, decimalToNumeric(*filter.MaxAmount))
		fmt.Fprintf(&sb, " AND ABS(t.amount) <= $%d", len(args))
	}

	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		fmt.Fprintf(&sb, " AND s.customer_id = $%d", len(args))
	}

	fmt.Fprintf(&sb, "\n\tORDER BY t.transaction_date DESC LIMIT %d", usecase.SearchLimit)

	return sb.String(), args
}

// mustDate parses a bound the use case has already format-validated.
func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("unvalidated date reached query builder: %q", s))
	}

	return t
}
