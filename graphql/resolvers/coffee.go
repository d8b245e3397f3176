package resolvers

import (
	"context"

	gqlmodels "coffeebar.GO/graphql/models"
	"coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

func (r *Resolver) Coffees(ctx context.Context, kind, query, sort string) (*gqlmodels.CoffeeList, error) {
	st := shop.ParseState(kind, query, sort)
	items, err := r.deps.Catalog.Load(ctx)
	if err != nil {
		return nil, &UserError{Message: shop.MsgFetchFailed, Err: err}
	}
	view := coffee.Apply(items, coffee.Selection{Kind: st.Kind, Text: st.Text, Sort: st.Sort})
	out := &gqlmodels.CoffeeList{
		Kind:  string(st.Kind),
		Query: st.Text,
		Sort:  string(st.Sort),
		Items: make([]*gqlmodels.CoffeeCard, 0, len(view)),
	}
	for _, it := range view {
		out.Items = append(out.Items, gqlmodels.NewCoffeeCard(coffee.Present(it)))
	}
	if len(out.Items) == 0 {
		msg := shop.MsgNoMatches
		out.Message = &msg
	}
	return out, nil
}

// Coffee returns nil for unknown ids.
func (r *Resolver) Coffee(ctx context.Context, id string) (*gqlmodels.Coffee, error) {
	if _, err := r.deps.Catalog.Load(ctx); err != nil {
		return nil, &UserError{Message: shop.MsgFetchFailed, Err: err}
	}
	it, ok := r.deps.Catalog.Find(id)
	if !ok {
		return nil, nil
	}
	return gqlmodels.NewCoffee(it), nil
}
