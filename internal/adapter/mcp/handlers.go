package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/usecase"
)

// emptyObject is what not-found lookups serialize to.
var emptyObject = map[string]any{}

// tool wraps a typed handler with logging, metrics, and the uniform error
// mapping. Handler errors become tool-level error results; the protocol
// error return stays nil so clients always see structured content.
func (s *Server) tool(name string, fn func(context.Context, *mcp.CallToolRequest) (any, error)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		invocationID := ulid.Make().String()
		log := s.log.With().
			Str("tool", name).
			Str("invocation_id", invocationID).
			Logger()

		log.Info().Msg("tool invoked")

		if s.metrics != nil {
			s.metrics.ToolInvocations.WithLabelValues(name).Inc()
		}

		start := time.Now()
		out, err := fn(ctx, req)
		elapsed := time.Since(start)

		if s.metrics != nil {
			s.metrics.ToolDuration.WithLabelValues(name).Observe(elapsed.Seconds())
		}

		if err != nil {
			kind := errorKind(err)
			if s.metrics != nil {
				s.metrics.ToolErrors.WithLabelValues(name, kind).Inc()
			}
			log.Error().Err(err).Str("kind", kind).Dur("elapsed", elapsed).Msg("tool failed")
			return errorResult(err), nil
		}

		log.Info().Dur("elapsed", elapsed).Msg("tool completed")
		return jsonResult(out), nil
	}
}

func decodeArgs(req *mcp.CallToolRequest, v any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}

	if err := json.Unmarshal(req.Params.Arguments, v); err != nil {
		return domain.NewInvalidInput("arguments", "could not be decoded: %v", err)
	}

	return nil
}

func (s *Server) handleGetCustomer(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetCustomer(ctx, args.Email, args.Phone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return emptyObject, nil
	}

	return customer, nil
}

func (s *Server) handleSearchCustomersByName(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		Name string `json:"name"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}
	if args.Name == "" {
		return nil, domain.NewInvalidInput("name", "is required")
	}

	return s.customers.SearchCustomersByName(ctx, args.Name)
}

func (s *Server) handleGetCustomerStatements(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		CustomerID any `json:"customer_id"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}

	return s.statements.GetCustomerStatements(ctx, args.CustomerID)
}

func (s *Server) handleGetStatementTransactions(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		StatementID any `json:"statement_id"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}

	return s.transactions.GetStatementTransactions(ctx, args.StatementID)
}

func (s *Server) handleGetCustomerTransactions(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		CustomerID any    `json:"customer_id"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}

	return s.transactions.GetCustomerTransactions(ctx, args.CustomerID, args.StartDate, args.EndDate)
}

func (s *Server) handleSearchTransactions(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		Merchant        string   `json:"merchant"`
		TransactionType string   `json:"transaction_type"`
		MinAmount       *float64 `json:"min_amount"`
		MaxAmount       *float64 `json:"max_amount"`
		CustomerID      any      `json:"customer_id"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}

	return s.transactions.SearchTransactions(ctx, usecase.SearchTransactionsInput{
		Merchant:        args.Merchant,
		TransactionType: args.TransactionType,
		MinAmount:       args.MinAmount,
		MaxAmount:       args.MaxAmount,
		CustomerID:      args.CustomerID,
	})
}

func (s *Server) handleGetStatementSummary(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		StatementID any `json:"statement_id"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}

	summary, err := s.summaries.GetStatementSummary(ctx, args.StatementID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return emptyObject, nil
	}

	return summary, nil
}

func (s *Server) handleGetCustomerSummary(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
	var args struct {
		CustomerID any `json:"customer_id"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return nil, err
	}

	summary, err := s.summaries.GetCustomerSummary(ctx, args.CustomerID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return emptyObject, nil
	}

	return summary, nil
}
