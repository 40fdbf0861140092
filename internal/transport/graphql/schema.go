// Package graphql serves the builder, the saved-team library and the
// catalog over GraphQL. The schema lives in schema.graphqls; field
// resolution is table driven (see Object) and runs on the gqlgen server
// runtime.
package graphql

import (
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var schemaSource string

// Schema parses the embedded schema. It panics on a malformed schema file.
func Schema() *ast.Schema {
	return gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})
}
