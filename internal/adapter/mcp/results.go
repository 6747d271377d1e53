package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redbank/bankmcp/internal/domain"
)

// Error kinds reported on the tool error metric.
const (
	kindInvalidInput = "invalid_input"
	kindDatabase     = "database"
)

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// errorResult renders err as a tool error. Validation failures surface as
// "Invalid input: ...", everything else as "Database error: ...".
func errorResult(err error) *mcp.CallToolResult {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return errorText("Invalid input: " + invalid.Error())
	}

	var dbErr *domain.DatabaseError
	if errors.As(err, &dbErr) {
		return errorText(fmt.Sprintf("Database error: %v", dbErr.Unwrap()))
	}

	return errorText(fmt.Sprintf("Database error: %v", err))
}

func errorText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func errorKind(err error) string {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return kindInvalidInput
	}

	return kindDatabase
}
