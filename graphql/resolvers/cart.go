package resolvers

import (
	"context"

	gqlmodels "coffeebar.GO/graphql/models"
	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/shop"
)

func (r *Resolver) loadCart(ctx context.Context) *cart.Cart {
	return cart.Load(ctx, r.deps.Store, r.cartKey, r.deps.Log)
}

func (r *Resolver) Cart(ctx context.Context) *gqlmodels.Cart {
	return gqlmodels.NewCart(r.loadCart(ctx))
}

// AddToCart rejects unknown and sold-out ids.
func (r *Resolver) AddToCart(ctx context.Context, id string) (*gqlmodels.Cart, error) {
	ctl := r.deps.Shop(ctx, r.cartKey, shop.DefaultState())
	if err := ctl.Load(ctx); err != nil {
		return nil, &UserError{Message: shop.MsgFetchFailed, Err: err}
	}
	if _, err := ctl.AddToCart(ctx, id); err != nil {
		return nil, err
	}
	return gqlmodels.NewCart(ctl.Cart()), nil
}

func (r *Resolver) AdjustQty(ctx context.Context, id string, delta int) *gqlmodels.Cart {
	c := r.loadCart(ctx)
	c.AdjustQty(ctx, id, delta)
	return gqlmodels.NewCart(c)
}

func (r *Resolver) RemoveFromCart(ctx context.Context, id string) *gqlmodels.Cart {
	c := r.loadCart(ctx)
	c.Remove(ctx, id)
	return gqlmodels.NewCart(c)
}

func (r *Resolver) Checkout(ctx context.Context) *gqlmodels.CheckoutResult {
	c := r.loadCart(ctx)
	msg := c.Checkout(ctx)
	return &gqlmodels.CheckoutResult{Message: gqlmodels.NewNotice(msg), Cart: gqlmodels.NewCart(c)}
}
