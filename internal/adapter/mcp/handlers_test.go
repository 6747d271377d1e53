package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/usecase"
	"github.com/redbank/bankmcp/internal/usecase/mocks"
)

type testDeps struct {
	customers    *mocks.MockCustomerRepository
	statements   *mocks.MockStatementRepository
	transactions *mocks.MockTransactionRepository
	cache        *mocks.MockCacheMap
}

func newTestServer(t *testing.T) (*Server, *testDeps) {
	t.Helper()

	deps := &testDeps{
		customers:    mocks.NewMockCustomerRepository(),
		statements:   mocks.NewMockStatementRepository(),
		transactions: mocks.NewMockTransactionRepository(),
		cache:        mocks.NewMockCacheMap(),
	}

	srv := New(Deps{
		Customers:    usecase.NewCustomerUseCase(deps.customers, nil),
		Statements:   usecase.NewStatementUseCase(deps.statements, nil),
		Transactions: usecase.NewTransactionUseCase(deps.transactions, nil),
		Summaries: usecase.NewSummaryUseCase(
			deps.customers, deps.statements, deps.cache, nil, time.Minute, zerolog.Nop(),
		),
		Logger: zerolog.Nop(),
	})

	return srv, deps
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any, handler func(context.Context, *sdk.CallToolRequest) (any, error)) *sdk.CallToolResult {
	t.Helper()

	raw, err := json.Marshal(args)
	require.NoError(t, err)

	req := &sdk.CallToolRequest{
		Params: &sdk.CallToolParamsRaw{
			Name:      name,
			Arguments: raw,
		},
	}

	result, err := srv.tool(name, handler)(context.Background(), req)
	require.NoError(t, err, "tool errors must be encoded in the result")
	require.NotNil(t, result)

	return result
}

func resultText(t *testing.T, result *sdk.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*sdk.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])

	return text.Text
}

func TestGetCustomerByEmail(t *testing.T) {
	srv, deps := newTestServer(t)

	dob := time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC)
	deps.customers.GetByEmailFunc = func(_ context.Context, email string) (*domain.Customer, error) {
		require.Equal(t, "alice@example.com", email)
		return &domain.Customer{
			ID:          7,
			Name:        "Alice Johnson",
			Email:       "alice@example.com",
			AccountType: "CHECKING",
			DateOfBirth: &dob,
		}, nil
	}

	result := callTool(t, srv, "get_customer", map[string]any{"email": "alice@example.com"}, srv.handleGetCustomer)
	require.False(t, result.IsError)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.EqualValues(t, 7, got["customer_id"])
	require.Equal(t, "Alice Johnson", got["name"])
}

func TestGetCustomerNotFoundReturnsEmptyObject(t *testing.T) {
	srv, _ := newTestServer(t)

	result := callTool(t, srv, "get_customer", map[string]any{"email": "nobody@example.com"}, srv.handleGetCustomer)
	require.False(t, result.IsError)
	require.JSONEq(t, `{}`, resultText(t, result))
}

func TestGetCustomerRequiresEmailOrPhone(t *testing.T) {
	srv, _ := newTestServer(t)

	result := callTool(t, srv, "get_customer", map[string]any{}, srv.handleGetCustomer)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "Invalid input: ")
	require.Contains(t, resultText(t, result), "either email or phone must be provided")
}

func TestGetCustomerDatabaseError(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.customers.GetByEmailFunc = func(context.Context, string) (*domain.Customer, error) {
		return nil, errors.New("connection refused")
	}

	result := callTool(t, srv, "get_customer", map[string]any{"email": "a@b.c"}, srv.handleGetCustomer)
	require.True(t, result.IsError)
	require.Equal(t, "Database error: connection refused", resultText(t, result))
}

func TestSearchCustomersByName(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.customers.SearchByNameFunc = func(_ context.Context, name string) ([]*domain.Customer, error) {
		require.Equal(t, "john", name)
		return []*domain.Customer{
			{ID: 1, Name: "John Smith", AccountType: "SAVINGS"},
			{ID: 2, Name: "Johnny Cash", AccountType: "CHECKING"},
		}, nil
	}

	result := callTool(t, srv, "search_customers_by_name", map[string]any{"name": "john"}, srv.handleSearchCustomersByName)
	require.False(t, result.IsError)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.Len(t, got, 2)
}

func TestSearchCustomersByNameRequiresName(t *testing.T) {
	srv, _ := newTestServer(t)

	result := callTool(t, srv, "search_customers_by_name", map[string]any{}, srv.handleSearchCustomersByName)
	require.True(t, result.IsError)
	require.Equal(t, "Invalid input: name is required", resultText(t, result))
}

func TestSearchCustomersByNameEmptyIsList(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.customers.SearchByNameFunc = func(context.Context, string) ([]*domain.Customer, error) {
		return []*domain.Customer{}, nil
	}

	result := callTool(t, srv, "search_customers_by_name", map[string]any{"name": "zzz"}, srv.handleSearchCustomersByName)
	require.False(t, result.IsError)
	require.Equal(t, "[]", resultText(t, result))
}

func TestGetCustomerStatementsAcceptsStringID(t *testing.T) {
	srv, deps := newTestServer(t)

	var gotID int64
	deps.statements.ListByCustomerFunc = func(_ context.Context, customerID int64) ([]*domain.Statement, error) {
		gotID = customerID
		return []*domain.Statement{}, nil
	}

	result := callTool(t, srv, "get_customer_statements", map[string]any{"customer_id": "42"}, srv.handleGetCustomerStatements)
	require.False(t, result.IsError)
	require.Equal(t, int64(42), gotID)
}

func TestGetCustomerStatementsRejectsBadID(t *testing.T) {
	srv, _ := newTestServer(t)

	result := callTool(t, srv, "get_customer_statements", map[string]any{"customer_id": "abc"}, srv.handleGetCustomerStatements)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "Invalid input: customer_id")
}

func TestGetCustomerTransactionsForwardsDates(t *testing.T) {
	srv, deps := newTestServer(t)

	var gotStart, gotEnd string
	deps.transactions.ListByCustomerFunc = func(_ context.Context, _ int64, startDate, endDate string) ([]*domain.Transaction, error) {
		gotStart, gotEnd = startDate, endDate
		return []*domain.Transaction{}, nil
	}

	result := callTool(t, srv, "get_customer_transactions", map[string]any{
		"customer_id": 5,
		"start_date":  "2025-01-01",
		"end_date":    "2025-01-31",
	}, srv.handleGetCustomerTransactions)
	require.False(t, result.IsError)
	require.Equal(t, "2025-01-01", gotStart)
	require.Equal(t, "2025-01-31", gotEnd)
}

func TestGetCustomerTransactionsRejectsBadDate(t *testing.T) {
	srv, _ := newTestServer(t)

	result := callTool(t, srv, "get_customer_transactions", map[string]any{
		"customer_id": 5,
		"start_date":  "2025-13-01",
	}, srv.handleGetCustomerTransactions)
	require.True(t, result.IsError)

	text := resultText(t, result)
	require.Contains(t, text, "Invalid input: start_date must be in YYYY-MM-DD format")
	require.Contains(t, text, "got: 2025-13-01")
}

func TestSearchTransactionsBuildsFilter(t *testing.T) {
	srv, deps := newTestServer(t)

	var gotFilter usecase.SearchFilter
	deps.transactions.SearchFunc = func(_ context.Context, filter usecase.SearchFilter) ([]*domain.Transaction, error) {
		gotFilter = filter
		return []*domain.Transaction{}, nil
	}

	result := callTool(t, srv, "search_transactions", map[string]any{
		"merchant":         "Coffee",
		"transaction_type": "debit",
		"min_amount":       10.5,
		"max_amount":       100,
		"customer_id":      3,
	}, srv.handleSearchTransactions)
	require.False(t, result.IsError)

	require.Equal(t, "Coffee", gotFilter.Merchant)
	require.Equal(t, domain.TransactionDebit, gotFilter.Type)
	require.NotNil(t, gotFilter.MinAmount)
	require.True(t, gotFilter.MinAmount.Equal(decimal.NewFromFloat(10.5)))
	require.NotNil(t, gotFilter.MaxAmount)
	require.True(t, gotFilter.MaxAmount.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, gotFilter.CustomerID)
	require.Equal(t, int64(3), *gotFilter.CustomerID)
}

func TestSearchTransactionsRejectsBadType(t *testing.T) {
	srv, _ := newTestServer(t)

	result := callTool(t, srv, "search_transactions", map[string]any{
		"transaction_type": "TRANSFER",
	}, srv.handleSearchTransactions)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "Invalid input: transaction_type")
}

func TestGetStatementSummaryNotFoundReturnsEmptyObject(t *testing.T) {
	srv, _ := newTestServer(t)

	result := callTool(t, srv, "get_statement_summary", map[string]any{"statement_id": 999}, srv.handleGetStatementSummary)
	require.False(t, result.IsError)
	require.JSONEq(t, `{}`, resultText(t, result))
}

func TestGetCustomerSummary(t *testing.T) {
	srv, deps := newTestServer(t)

	latestID := int64(12)
	balance := decimal.RequireFromString("1523.75")
	deps.customers.SummaryFunc = func(_ context.Context, customerID int64) (*domain.CustomerSummary, error) {
		require.Equal(t, int64(4), customerID)
		return &domain.CustomerSummary{
			CustomerID:        4,
			Name:              "Maria Garcia",
			AccountType:       "SAVINGS",
			TotalStatements:   3,
			LatestStatementID: &latestID,
			LatestBalance:     &balance,
		}, nil
	}

	result := callTool(t, srv, "get_customer_summary", map[string]any{"customer_id": 4}, srv.handleGetCustomerSummary)
	require.False(t, result.IsError)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.EqualValues(t, 3, got["total_statements"])
	require.Equal(t, "1523.75", got["latest_balance"])
}

func TestMalformedArgumentsAreInvalidInput(t *testing.T) {
	srv, _ := newTestServer(t)

	req := &sdk.CallToolRequest{
		Params: &sdk.CallToolParamsRaw{
			Name:      "get_customer",
			Arguments: json.RawMessage(`{"email": 5}`),
		},
	}

	result, err := srv.tool("get_customer", srv.handleGetCustomer)(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "Invalid input: arguments could not be decoded")
}
