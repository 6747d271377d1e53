package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/infrastructure/metrics"
	"github.com/redbank/bankmcp/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository over pgx.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewTransactionRepository creates a new TransactionRepository. Metrics may
// be nil.
func NewTransactionRepository(pool *pgxpool.Pool, m *metrics.Metrics) *TransactionRepository {
	return &TransactionRepository{pool: pool, metrics: m}
}

// ListByStatement retrieves a statement's transactions ordered by date
// descending.
func (r *TransactionRepository) ListByStatement(ctx context.Context, statementID int64) ([]*domain.Transaction, error) {
	defer observe(r.metrics, "transactions.list_by_statement", time.Now())

	query := transactionSelect + `
	WHERE t.statement_id = $1
	ORDER BY t.transaction_date DESC`

	return r.query(ctx, query, statementID)
}

// ListByCustomer retrieves a customer's transactions, optionally bounded by
// an inclusive date range, ordered by date descending. Bounds are already
// format-validated YYYY-MM-DD strings or empty.
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID int64, startDate, endDate string) ([]*domain.Transaction, error) {
	defer observe(r.metrics, "transactions.list_by_customer", time.Now())

	query, args := customerTransactionsQuery(customerID, startDate, endDate)

	return r.query(ctx, query, args...)
}

// Search retrieves transactions matching the filter, ordered by date
// descending and capped at usecase.SearchLimit rows.
func (r *TransactionRepository) Search(ctx context.Context, filter usecase.SearchFilter) ([]*domain.Transaction, error) {
	defer observe(r.metrics, "transactions.search", time.Now())

	query, args := searchTransactionsQuery(filter)

	return r.query(ctx, query, args...)
}

func (r *TransactionRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	transactions := make([]*domain.Transaction, 0)

	for rows.Next() {
		var (
			transaction domain.Transaction
			txDate      pgtype.Timestamptz
			amount      pgtype.Numeric
			description pgtype.Text
			merchant    pgtype.Text
		)

		err := rows.Scan(
			&transaction.ID,
			&transaction.StatementID,
			&transaction.CustomerID,
			&transaction.CustomerName,
			&txDate,
			&amount,
			&description,
			&transaction.Type,
			&merchant,
		)
		if err != nil {
			return nil, err
		}

		transaction.Date = txDate.Time
		transaction.Amount = numericToDecimal(amount)
		transaction.Description = textValue(description)
		transaction.Merchant = textValue(merchant)

		transactions = append(transactions, &transaction)
	}

	return transactions, rows.Err()
}
