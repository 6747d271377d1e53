package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/infrastructure/metrics"
)

// StatementRepository implements usecase.StatementRepository over pgx.
type StatementRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewStatementRepository creates a new StatementRepository. Metrics may be nil.
func NewStatementRepository(pool *pgxpool.Pool, m *metrics.Metrics) *StatementRepository {
	return &StatementRepository{pool: pool, metrics: m}
}

// ListByCustomer retrieves a customer's statements ordered by period start
// descending.
func (r *StatementRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Statement, error) {
	defer observe(r.metrics, "statements.list_by_customer", time.Now())

	query := `
	SELECT s.statement_id, s.customer_id, c.name,
	       s.statement_period_start, s.statement_period_end,
	       s.balance, s.created_date
	FROM statements s
	JOIN customers c ON s.customer_id = c.customer_id
	WHERE s.customer_id = $1
	ORDER BY s.statement_period_start DESC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statements := make([]*domain.Statement, 0)
	for rows.Next() {
		var (
			statement   domain.Statement
			periodStart pgtype.Date
			periodEnd   pgtype.Date
			balance     pgtype.Numeric
			created     pgtype.Timestamptz
		)

		err := rows.Scan(
			&statement.ID,
			&statement.CustomerID,
			&statement.CustomerName,
			&periodStart,
			&periodEnd,
			&balance,
			&created,
		)
		if err != nil {
			return nil, err
		}

		statement.PeriodStart = dateValue(periodStart)
		statement.PeriodEnd = dateValue(periodEnd)
		statement.Balance = numericToDecimal(balance)
		statement.CreatedDate = created.Time

		statements = append(statements, &statement)
	}

	return statements, rows.Err()
}

// Summary aggregates a statement's transactions: counts and absolute-value
// totals by type. The LEFT JOIN guarantees a row for statements with no
// transactions.
func (r *StatementRepository) Summary(ctx context.Context, statementID int64) (*domain.StatementSummary, error) {
	defer observe(r.metrics, "statements.summary", time.Now())

	query := `
	SELECT s.statement_id, s.customer_id, c.name,
	       s.statement_period_start, s.statement_period_end, s.balance,
	       COUNT(t.transaction_id) AS total_transactions,
	       COUNT(CASE WHEN t.transaction_type = 'CREDIT' THEN 1 END) AS credit_count,
	       COUNT(CASE WHEN t.transaction_type = 'DEBIT' THEN 1 END) AS debit_count,
	       COALESCE(SUM(CASE WHEN t.transaction_type = 'CREDIT' THEN ABS(t.amount) END), 0) AS credit_total,
	       COALESCE(SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN ABS(t.amount) END), 0) AS debit_total
	FROM statements s
	JOIN customers c ON s.customer_id = c.customer_id
	LEFT JOIN transactions t ON s.statement_id = t.statement_id
	WHERE s.statement_id = $1
	GROUP BY s.statement_id, s.customer_id, c.name,
	         s.statement_period_start, s.statement_period_end, s.balance`

	var (
		summary     domain.StatementSummary
		periodStart pgtype.Date
		periodEnd   pgtype.Date
		balance     pgtype.Numeric
		credits     pgtype.Numeric
		debits      pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx, query, statementID).Scan(
		&summary.StatementID,
		&summary.CustomerID,
		&summary.CustomerName,
		&periodStart,
		&periodEnd,
		&balance,
		&summary.TotalTransactions,
		&summary.CreditTransactions,
		&summary.DebitTransactions,
		&credits,
		&debits,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}
		return nil, err
	}

	summary.PeriodStart = dateValue(periodStart)
	summary.PeriodEnd = dateValue(periodEnd)
	summary.EndingBalance = numericToDecimal(balance)
	summary.TotalCredits = numericToDecimal(credits)
	summary.TotalDebits = numericToDecimal(debits)

	return &summary, nil
}
