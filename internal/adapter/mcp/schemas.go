package mcp

import "github.com/google/jsonschema-go/jsonschema"

var getCustomerSchema = objectSchema(map[string]*jsonschema.Schema{
	"email": stringProp("Customer email address"),
	"phone": stringProp("Customer phone number"),
})

var searchCustomersByNameSchema = objectSchema(map[string]*jsonschema.Schema{
	"name": stringProp("Full or partial customer name"),
}, "name")

var getCustomerStatementsSchema = objectSchema(map[string]*jsonschema.Schema{
	"customer_id": integerProp("Customer ID"),
}, "customer_id")

var getStatementTransactionsSchema = objectSchema(map[string]*jsonschema.Schema{
	"statement_id": integerProp("Statement ID"),
}, "statement_id")

var getCustomerTransactionsSchema = objectSchema(map[string]*jsonschema.Schema{
	"customer_id": integerProp("Customer ID"),
	"start_date":  stringProp("Optional start date (YYYY-MM-DD)"),
	"end_date":    stringProp("Optional end date (YYYY-MM-DD)"),
}, "customer_id")

var searchTransactionsSchema = objectSchema(map[string]*jsonschema.Schema{
	"merchant":         stringProp("Merchant name (partial match)"),
	"transaction_type": stringProp("DEBIT or CREDIT"),
	"min_amount":       numberProp("Minimum absolute amount"),
	"max_amount":       numberProp("Maximum absolute amount"),
	"customer_id":      integerProp("Customer ID"),
})

var getStatementSummarySchema = objectSchema(map[string]*jsonschema.Schema{
	"statement_id": integerProp("Statement ID"),
}, "statement_id")

var getCustomerSummarySchema = objectSchema(map[string]*jsonschema.Schema{
	"customer_id": integerProp("Customer ID"),
}, "customer_id")

func objectSchema(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func stringProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func integerProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: description}
}

func numberProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: description}
}
