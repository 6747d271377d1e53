package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/infrastructure/metrics"
)

const customerSelect = `
	SELECT customer_id, name, email, phone, address, account_type,
	       date_of_birth, created_date
	FROM customers`

// CustomerRepository implements usecase.CustomerRepository over pgx.
type CustomerRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewCustomerRepository creates a new CustomerRepository. Metrics may be nil.
func NewCustomerRepository(pool *pgxpool.Pool, m *metrics.Metrics) *CustomerRepository {
	return &CustomerRepository{pool: pool, metrics: m}
}

// GetByEmail retrieves a customer by exact email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getByField(ctx, "email", email)
}

// GetByPhone retrieves a customer by exact phone number.
func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return r.getByField(ctx, "phone", phone)
}

// getByField looks up a customer by a column from the fixed identifier set.
// The column name is never caller-controlled.
func (r *CustomerRepository) getByField(ctx context.Context, field, value string) (*domain.Customer, error) {
	defer observe(r.metrics, "customers.get_by_"+field, time.Now())

	query := fmt.Sprintf("%s WHERE %s = $1", customerSelect, field)

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	return customer, nil
}

// SearchByName finds customers by case-insensitive substring match on name,
// ordered by name ascending.
func (r *CustomerRepository) SearchByName(ctx context.Context, name string) ([]*domain.Customer, error) {
	defer observe(r.metrics, "customers.search_by_name", time.Now())

	query := customerSelect + `
	WHERE LOWER(name) LIKE LOWER($1)
	ORDER BY name`

	rows, err := r.pool.Query(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

// Summary aggregates a customer's statement position: statement count,
// latest statement id/date, and the balance of the most recent statement.
func (r *CustomerRepository) Summary(ctx context.Context, customerID int64) (*domain.CustomerSummary, error) {
	defer observe(r.metrics, "customers.summary", time.Now())

	query := `
	SELECT c.customer_id, c.name, c.email, c.phone, c.address,
	       c.account_type, c.date_of_birth,
	       COUNT(DISTINCT s.statement_id) AS total_statements,
	       MAX(s.statement_id) AS latest_statement_id,
	       MAX(s.statement_period_end) AS latest_statement_date,
	       (SELECT balance FROM statements
	        WHERE customer_id = c.customer_id
	        ORDER BY statement_period_end DESC LIMIT 1) AS latest_balance
	FROM customers c
	LEFT JOIN statements s ON c.customer_id = s.customer_id
	WHERE c.customer_id = $1
	GROUP BY c.customer_id, c.name, c.email, c.phone, c.address,
	         c.account_type, c.date_of_birth`

	var (
		summary       domain.CustomerSummary
		email         pgtype.Text
		phone         pgtype.Text
		address       pgtype.Text
		dob           pgtype.Date
		latestID      pgtype.Int8
		latestDate    pgtype.Date
		latestBalance pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&summary.CustomerID,
		&summary.Name,
		&email,
		&phone,
		&address,
		&summary.AccountType,
		&dob,
		&summary.TotalStatements,
		&latestID,
		&latestDate,
		&latestBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	summary.Email = textValue(email)
	summary.Phone = textValue(phone)
	summary.Address = textValue(address)
	summary.DateOfBirth = dateToTimePtr(dob)
	summary.LatestStatementID = int8ToPtr(latestID)
	summary.LatestStatementDate = dateToTimePtr(latestDate)
	summary.LatestBalance = numericToDecimalPtr(latestBalance)

	return &summary, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		customer domain.Customer
		email    pgtype.Text
		phone    pgtype.Text
		address  pgtype.Text
		dob      pgtype.Date
		created  pgtype.Timestamptz
	)

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&email,
		&phone,
		&address,
		&customer.AccountType,
		&dob,
		&created,
	)
	if err != nil {
		return nil, err
	}

	customer.Email = textValue(email)
	customer.Phone = textValue(phone)
	customer.Address = textValue(address)
	customer.DateOfBirth = dateToTimePtr(dob)
	customer.CreatedDate = created.Time

	return &customer, nil
}

// observe records query count and duration when metrics are wired.
func observe(m *metrics.Metrics, op string, start time.Time) {
	if m == nil {
		return
	}

	m.DBQueries.WithLabelValues(op).Inc()
	m.DBDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
