package graphql

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	json "github.com/goccy/go-json"
	"github.com/vektah/gqlparser/v2/ast"
)

// ErrIntrospectionDisabled is returned for __schema and __type selections.
var ErrIntrospectionDisabled = errors.New("introspection disabled")

// Resolve returns the value of one field of obj. args holds the field
// arguments after variable substitution and defaults.
//
// A resolver returns a scalar (string, int, bool, []string or nil), a
// Typed value, or a []Typed list.
type Resolve func(ctx context.Context, obj any, args map[string]any) (any, error)

// Object binds a schema object type to the resolvers of its fields.
type Object struct {
	Name   string
	Fields map[string]Resolve
}

// Typed is a value presented as an object type. A nil Value is null.
type Typed struct {
	Type  *Object
	Value any
}

// As wraps every item of values as typ.
func As[T any](typ *Object, values []T) []Typed {
	out := make([]Typed, len(values))
	for i := range values {
		out[i] = Typed{Type: typ, Value: values[i]}
	}
	return out
}

// Executor runs validated operations against the Query and Mutation
// objects. It implements graphql.ExecutableSchema.
type Executor struct {
	schema   *ast.Schema
	query    *Object
	mutation *Object
	log      *slog.Logger
}

// NewExecutor creates an Executor over schema.
func NewExecutor(log *slog.Logger, schema *ast.Schema, query, mutation *Object) *Executor {
	return &Executor{
		schema:   schema,
		query:    query,
		mutation: mutation,
		log:      log,
	}
}

var _ graphql.ExecutableSchema = (*Executor)(nil)

// Schema returns the parsed schema.
func (e *Executor) Schema() *ast.Schema { return e.schema }

// Complexity leaves every field at the default cost.
func (e *Executor) Complexity(ctx context.Context, typeName, field string, childComplexity int, args map[string]any) (int, bool) {
	return 0, false
}

// Exec resolves the operation in ctx. Query fields resolve concurrently;
// mutation fields run one after another in document order.
func (e *Executor) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	var (
		root   *Object
		serial bool
	)
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = e.query
	case ast.Mutation:
		root, serial = e.mutation, true
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data := e.selectObject(ctx, opCtx, root, nil, opCtx.Operation.SelectionSet, serial)
		out, err := json.Marshal(data)
		if err != nil {
			graphql.AddError(ctx, fmt.Errorf("encode response: %w", err))
			return &graphql.Response{}
		}
		return &graphql.Response{Data: out}
	}
}

func (e *Executor) selectObject(ctx context.Context, opCtx *graphql.OperationContext, typ *Object, obj any, sel ast.SelectionSet, serial bool) *object {
	fields := graphql.CollectFields(opCtx, sel, []string{typ.Name})
	out := &object{
		keys:   make([]string, len(fields)),
		values: make([]any, len(fields)),
	}

	var wg sync.WaitGroup
	for i, f := range fields {
		out.keys[i] = f.Alias
		switch {
		case f.Name == "__typename":
			out.values[i] = typ.Name
		case serial:
			out.values[i] = e.resolveField(ctx, opCtx, typ, obj, f)
		default:
			wg.Add(1)
			go func() {
				defer wg.Done()
				out.values[i] = e.resolveField(ctx, opCtx, typ, obj, f)
			}()
		}
	}
	wg.Wait()
	return out
}

func (e *Executor) resolveField(ctx context.Context, opCtx *graphql.OperationContext, typ *Object, obj any, f graphql.CollectedField) (res any) {
	fc := &graphql.FieldContext{
		Object:     typ.Name,
		Field:      f,
		IsMethod:   true,
		IsResolver: true,
	}
	ctx = graphql.WithFieldContext(ctx, fc)

	defer func() {
		if r := recover(); r != nil {
			e.log.ErrorContext(ctx, "resolver panic",
				slog.String("field", typ.Name+"."+f.Name),
				slog.Any("panic", r),
			)
			graphql.AddError(ctx, fmt.Errorf("resolve %s.%s: panic: %v", typ.Name, f.Name, r))
			res = nil
		}
	}()

	if f.Name == "__schema" || f.Name == "__type" {
		graphql.AddError(ctx, ErrIntrospectionDisabled)
		return nil
	}

	resolve, ok := typ.Fields[f.Name]
	if !ok {
		graphql.AddError(ctx, fmt.Errorf("no resolver for %s.%s", typ.Name, f.Name))
		return nil
	}

	fc.Args = f.ArgumentMap(opCtx.Variables)
	v, err := resolve(ctx, obj, fc.Args)
	if err != nil {
		graphql.AddError(ctx, err)
		return nil
	}
	return e.complete(ctx, opCtx, v, f.Selections)
}

// complete expands object values against the field's selection set.
// List items resolve concurrently so per-request loaders can batch them.
func (e *Executor) complete(ctx context.Context, opCtx *graphql.OperationContext, v any, sel ast.SelectionSet) any {
	switch v := v.(type) {
	case Typed:
		if v.Value == nil {
			return nil
		}
		return e.selectObject(ctx, opCtx, v.Type, v.Value, sel, false)
	case []Typed:
		out := make([]any, len(v))
		var wg sync.WaitGroup
		for i := range v {
			wg.Add(1)
			go func() {
				defer wg.Done()
				idx := i
				ictx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Index: &idx, Result: v[i].Value})
				out[i] = e.complete(ictx, opCtx, v[i], sel)
			}()
		}
		wg.Wait()
		return out
	case []string:
		if v == nil {
			return []string{}
		}
		return v
	default:
		return v
	}
}

// object is a selection result that marshals its keys in selection order.
type object struct {
	keys   []string
	values []any
}

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
