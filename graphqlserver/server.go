package graphqlserver

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"coffeebar.GO/app"
	"coffeebar.GO/core/session"
	"coffeebar.GO/graphql"
	gqlmodels "coffeebar.GO/graphql/models"
	"coffeebar.GO/graphql/resolvers"
)

// RootResolver is the root for graphql-go. Field resolvers are created per
// request with the cart key taken from the request context.
type RootResolver struct {
	Deps *app.Deps
}

func (r *RootResolver) resolver(ctx context.Context) *resolvers.Resolver {
	key, _ := session.CartKeyFromContext(ctx)
	return resolvers.NewResolver(r.Deps, key)
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{root: r}
}

// Mutation returns the mutation resolver.
func (r *RootResolver) Mutation() *MutationResolver {
	return &MutationResolver{root: r}
}

// QueryResolver implements Query fields. Delegates to resolvers package.
type QueryResolver struct {
	root *RootResolver
}

func (q *QueryResolver) Coffees(ctx context.Context, args graphql.CoffeesArgs) (*gqlmodels.CoffeeList, error) {
	return q.root.resolver(ctx).Coffees(ctx, graphql.Deref(args.Kind), graphql.Deref(args.Query), graphql.Deref(args.Sort))
}

func (q *QueryResolver) Coffee(ctx context.Context, args graphql.CoffeeArgs) (*gqlmodels.Coffee, error) {
	return q.root.resolver(ctx).Coffee(ctx, string(args.ID))
}

func (q *QueryResolver) Books(ctx context.Context, args graphql.BooksArgs) (*gqlmodels.BookList, error) {
	return q.root.resolver(ctx).Books(ctx, graphql.Deref(args.Query), graphql.Deref(args.Genre), graphql.Deref(args.Age))
}

func (q *QueryResolver) Cart(ctx context.Context) *gqlmodels.Cart {
	return q.root.resolver(ctx).Cart(ctx)
}

func (q *QueryResolver) Extension(ctx context.Context, args graphql.ExtensionArgs) (*string, error) {
	return q.root.resolver(ctx).Extension(ctx, args.Name, args.Args)
}

// MutationResolver implements Mutation fields.
type MutationResolver struct {
	root *RootResolver
}

func (m *MutationResolver) AddToCart(ctx context.Context, args graphql.ItemArgs) (*gqlmodels.Cart, error) {
	return m.root.resolver(ctx).AddToCart(ctx, string(args.ID))
}

func (m *MutationResolver) AdjustQty(ctx context.Context, args graphql.AdjustQtyArgs) *gqlmodels.Cart {
	return m.root.resolver(ctx).AdjustQty(ctx, string(args.ID), int(args.Delta))
}

func (m *MutationResolver) RemoveFromCart(ctx context.Context, args graphql.ItemArgs) *gqlmodels.Cart {
	return m.root.resolver(ctx).RemoveFromCart(ctx, string(args.ID))
}

func (m *MutationResolver) Checkout(ctx context.Context) *gqlmodels.CheckoutResult {
	return m.root.resolver(ctx).Checkout(ctx)
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(deps *app.Deps) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Deps: deps}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
