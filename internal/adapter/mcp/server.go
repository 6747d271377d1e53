package mcp

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/infrastructure/metrics"
	"github.com/redbank/bankmcp/internal/usecase"
)

const (
	serverName    = "redbank-mcp"
	serverVersion = "1.0.0"
)

// CustomerService defines the customer lookups needed by the tool layer.
type CustomerService interface {
	GetCustomer(ctx context.Context, email, phone string) (*domain.Customer, error)
	SearchCustomersByName(ctx context.Context, name string) ([]*domain.Customer, error)
}

// StatementService defines the statement lookups needed by the tool layer.
type StatementService interface {
	GetCustomerStatements(ctx context.Context, customerID any) ([]*domain.Statement, error)
}

// TransactionService defines the transaction lookups needed by the tool layer.
type TransactionService interface {
	GetStatementTransactions(ctx context.Context, statementID any) ([]*domain.Transaction, error)
	GetCustomerTransactions(ctx context.Context, customerID any, startDate, endDate string) ([]*domain.Transaction, error)
	SearchTransactions(ctx context.Context, input usecase.SearchTransactionsInput) ([]*domain.Transaction, error)
}

// SummaryService defines the aggregate lookups needed by the tool layer.
type SummaryService interface {
	GetStatementSummary(ctx context.Context, statementID any) (*domain.StatementSummary, error)
	GetCustomerSummary(ctx context.Context, customerID any) (*domain.CustomerSummary, error)
}

// Server exposes the banking query tools over the Model Context Protocol.
type Server struct {
	srv *mcp.Server

	customers    CustomerService
	statements   StatementService
	transactions TransactionService
	summaries    SummaryService

	log     zerolog.Logger
	metrics *metrics.Metrics
}

// Deps holds the collaborators for a Server. Metrics may be nil.
type Deps struct {
	Customers    CustomerService
	Statements   StatementService
	Transactions TransactionService
	Summaries    SummaryService
	Logger       zerolog.Logger
	Metrics      *metrics.Metrics
}

// New creates a Server with all tools registered.
func New(deps Deps) *Server {
	s := &Server{
		srv: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
		customers:    deps.Customers,
		statements:   deps.Statements,
		transactions: deps.Transactions,
		summaries:    deps.Summaries,
		log:          deps.Logger,
		metrics:      deps.Metrics,
	}

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.srv.AddTool(&mcp.Tool{
		Name:        "get_customer",
		Description: "Get customer by email or phone number. Returns customer details or an empty object if not found.",
		InputSchema: getCustomerSchema,
	}, s.tool("get_customer", s.handleGetCustomer))

	s.srv.AddTool(&mcp.Tool{
		Name:        "search_customers_by_name",
		Description: "Search customers by name (case-insensitive partial match). Returns a list of matching customers.",
		InputSchema: searchCustomersByNameSchema,
	}, s.tool("search_customers_by_name", s.handleSearchCustomersByName))

	s.srv.AddTool(&mcp.Tool{
		Name:        "get_customer_statements",
		Description: "Get all statements for a customer, newest period first.",
		InputSchema: getCustomerStatementsSchema,
	}, s.tool("get_customer_statements", s.handleGetCustomerStatements))

	s.srv.AddTool(&mcp.Tool{
		Name:        "get_statement_transactions",
		Description: "Get all transactions for a statement, newest first.",
		InputSchema: getStatementTransactionsSchema,
	}, s.tool("get_statement_transactions", s.handleGetStatementTransactions))

	s.srv.AddTool(&mcp.Tool{
		Name:        "get_customer_transactions",
		Description: "Get customer transactions with optional date filtering (YYYY-MM-DD bounds, inclusive).",
		InputSchema: getCustomerTransactionsSchema,
	}, s.tool("get_customer_transactions", s.handleGetCustomerTransactions))

	s.srv.AddTool(&mcp.Tool{
		Name:        "search_transactions",
		Description: "Search transactions by merchant, type, amount range, or customer. Amount bounds compare absolute values. Returns at most 100 rows.",
		InputSchema: searchTransactionsSchema,
	}, s.tool("search_transactions", s.handleSearchTransactions))

	s.srv.AddTool(&mcp.Tool{
		Name:        "get_statement_summary",
		Description: "Get statement summary with transaction counts and credit/debit totals. Returns an empty object if the statement does not exist.",
		InputSchema: getStatementSummarySchema,
	}, s.tool("get_statement_summary", s.handleGetStatementSummary))

	s.srv.AddTool(&mcp.Tool{
		Name:        "get_customer_summary",
		Description: "Get customer account summary including statement count and latest balance. Returns an empty object if the customer does not exist.",
		InputSchema: getCustomerSummarySchema,
	}, s.tool("get_customer_summary", s.handleGetCustomerSummary))
}

// Run serves the protocol over stdin/stdout until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.srv.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the streamable HTTP transport handler for /mcp.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.srv
	}, nil)
}
