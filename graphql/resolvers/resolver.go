package resolvers

import (
	"context"
	"encoding/json"

	"coffeebar.GO/app"
	gqlregistry "coffeebar.GO/graphql/registry"
)

// Resolver answers Query and Mutation fields for one request. Methods live
// in coffee.go, books.go and cart.go. New fields: RegisterSchemaExtension +
// a method on the server's resolvers, or _extension for fully dynamic ones.
type Resolver struct {
	deps    *app.Deps
	cartKey string
}

func NewResolver(deps *app.Deps, cartKey string) *Resolver {
	if cartKey == "" {
		cartKey = deps.Config.CartKey
	}
	return &Resolver{deps: deps, cartKey: cartKey}
}

// UserError carries the message shown to API clients and keeps the cause
// for errors.Is.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// Extension dispatches to registered custom resolvers. args is a JSON object.
func (r *Resolver) Extension(ctx context.Context, name string, args *string) (*string, error) {
	var m map[string]interface{}
	if args != nil && *args != "" {
		_ = json.Unmarshal([]byte(*args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := gqlregistry.Resolve(ctx, name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
