package resolver

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// Argument values arrive as the GraphQL runtime decoded them: literals as
// int64, variables possibly as json.Number or float64.

func argString(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func argInt(args map[string]any, name string) int {
	switch v := args[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	}
	return 0
}

func argBool(args map[string]any, name string) bool {
	b, _ := args[name].(bool)
	return b
}

func argStrings(args map[string]any, name string) []string {
	switch v := args[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// argEnum maps an enum value (SINGLE, PSYCHUBE) to its domain spelling.
func argEnum(args map[string]any, name string) string {
	return strings.ToLower(argString(args, name))
}

func argUUID(args map[string]any, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(argString(args, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// enumValue is the schema spelling of a domain enum value.
func enumValue[S ~string](v S) string {
	return strings.ToUpper(string(v))
}

// optional maps the empty string to null.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
