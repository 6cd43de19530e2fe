// Package functioncall simulates a model translating natural language into
// structured calls: a SQL statement and a credit score function.
package functioncall

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned when no operation keyword is found.
var ErrUnknownOperation = errors.New("Could not determine database operation from prompt")

// Operation is a database operation inferred from a prompt.
type Operation string

const (
	OpRead    Operation = "READ"
	OpCreate  Operation = "CREATE"
	OpDelete  Operation = "DELETE"
	OpUnknown Operation = "UNKNOWN"
)

// operationKeywords is checked in order; the first keyword found anywhere in
// the prompt decides the operation.
var operationKeywords = []struct {
	keyword string
	op      Operation
}{
	{"find", OpRead},
	{"get", OpRead},
	{"search", OpRead},
	{"add", OpCreate},
	{"create", OpCreate},
	{"insert", OpCreate},
	{"remove", OpDelete},
	{"delete", OpDelete},
}

// SQLResult is the simulated outcome of a database call.
type SQLResult struct {
	Operation      Operation `json:"operation"`
	Result         string    `json:"result"`
	RawQuery       string    `json:"rawQuery"`
	Interpretation string    `json:"aiInterpretation"`
}

// ParseSQLPrompt infers the operation and its parameters. The prompt is
// split on single spaces and everything after the first piece is rejoined,
// so repeated spaces inside the parameters are kept.
func ParseSQLPrompt(prompt string) (Operation, string) {
	lower := strings.ToLower(prompt)
	op := OpUnknown
	for _, k := range operationKeywords {
		if strings.Contains(lower, k.keyword) {
			op = k.op
			break
		}
	}

	var params string
	if _, rest, ok := strings.Cut(prompt, " "); ok {
		params = rest
	}
	return op, params
}

// RunSQL interprets prompt and builds the matching statement against the
// users table. Nothing is executed.
func RunSQL(prompt string) (*SQLResult, error) {
	op, params := ParseSQLPrompt(prompt)
	quoted := strings.ReplaceAll(params, "'", "''")

	res := &SQLResult{
		Operation:      op,
		Interpretation: fmt.Sprintf("AI interpreted this as a %s operation with parameters: %s", op, params),
	}
	switch op {
	case OpRead:
		res.Result = "Found data for: " + params
		res.RawQuery = fmt.Sprintf("SELECT * FROM users WHERE name LIKE '%%%s%%'", quoted)
	case OpCreate:
		res.Result = "Created new record: " + params
		res.RawQuery = fmt.Sprintf("INSERT INTO users (name) VALUES ('%s')", quoted)
	case OpDelete:
		res.Result = "Deleted record: " + params
		res.RawQuery = fmt.Sprintf("DELETE FROM users WHERE name = '%s'", quoted)
	default:
		return nil, ErrUnknownOperation
	}
	return res, nil
}
