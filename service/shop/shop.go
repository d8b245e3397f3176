// Package shop ties the coffee catalog, the view selection and the cart
// together. A Controller is created per request or command; it owns the
// state and every screen is a fresh projection of it.
package shop

import (
	"context"
	"errors"

	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/coffee"
	"go.uber.org/zap"
)

var (
	ErrUnknownItem = errors.New("unknown item")
	ErrSoldOut     = errors.New("item is sold out")
)

const (
	MsgFetchFailed = "Could not fetch drinks right now."
	MsgNoMatches   = "No drinks match your search."
)

// State is the user's current selection.
type State struct {
	Kind coffee.Kind
	Text string
	Sort coffee.SortMode
}

// DefaultState shows hot drinks in catalog order.
func DefaultState() State {
	return State{Kind: coffee.KindHot}
}

// ParseState builds a State from raw inputs. Unknown kinds fall back to hot
// and unknown sort modes keep catalog order.
func ParseState(kind, text, sort string) State {
	st := DefaultState()
	if k, err := coffee.ParseKind(kind); err == nil {
		st.Kind = k
	}
	st.Text = text
	st.Sort = coffee.SortMode(sort)
	return st
}

// Controller owns one session's view of the shop.
type Controller struct {
	catalog *coffee.Catalog
	cart    *cart.Cart
	log     *zap.Logger

	state    State
	items    []coffee.Item
	fetchErr error
	message  *cart.Message
}

func NewController(catalog *coffee.Catalog, c *cart.Cart, state State, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if state.Kind == "" {
		state.Kind = coffee.KindHot
	}
	return &Controller{catalog: catalog, cart: c, state: state, log: log}
}

// Load fetches the catalog. On failure the previous collection stays and
// the error is kept for the next Screen.
func (c *Controller) Load(ctx context.Context) error {
	items, err := c.catalog.Load(ctx)
	c.items = items
	c.fetchErr = err
	return err
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Cart() *cart.Cart { return c.cart }

// ToggleKind switches the active kind and clears the search text. Choosing
// the active kind does nothing.
func (c *Controller) ToggleKind(ctx context.Context, k coffee.Kind) error {
	if k == c.state.Kind {
		return nil
	}
	c.state.Kind = k
	c.state.Text = ""
	return c.Load(ctx)
}

func (c *Controller) Search(text string) { c.state.Text = text }

func (c *Controller) SortBy(mode coffee.SortMode) { c.state.Sort = mode }

// View is the filtered and sorted projection of the collection.
func (c *Controller) View() []coffee.Item {
	return coffee.Apply(c.items, coffee.Selection{
		Kind: c.state.Kind,
		Text: c.state.Text,
		Sort: c.state.Sort,
	})
}

// AddToCart adds the catalog item with the given cart key.
func (c *Controller) AddToCart(ctx context.Context, id string) (cart.Entry, error) {
	item, ok := c.find(id)
	if !ok {
		return cart.Entry{}, ErrUnknownItem
	}
	if coffee.IsSoldOut(item) {
		return cart.Entry{}, ErrSoldOut
	}
	return c.cart.Add(ctx, item), nil
}

func (c *Controller) AdjustQty(ctx context.Context, id string, delta int) {
	c.cart.AdjustQty(ctx, id, delta)
}

func (c *Controller) Remove(ctx context.Context, id string) {
	c.cart.Remove(ctx, id)
}

// Checkout empties the cart and keeps the resulting notice for Screen.
func (c *Controller) Checkout(ctx context.Context) cart.Message {
	msg := c.cart.Checkout(ctx)
	c.message = &msg
	c.log.Info("checkout", zap.String("cart", c.cart.Key()), zap.String("result", string(msg.Kind)))
	return msg
}

func (c *Controller) find(id string) (coffee.Item, bool) {
	for _, it := range c.items {
		if it.Key() == id {
			return it, true
		}
	}
	return coffee.Item{}, false
}

// Screen is everything needed to draw the coffee page.
type Screen struct {
	State   State
	Cards   []coffee.Display
	Status  string
	Lines   []cart.Entry
	Total   int
	Count   int
	Message *cart.Message
}

// Screen projects the current state. A fetch failure replaces the cards
// with the error message.
func (c *Controller) Screen() Screen {
	s := Screen{
		State:   c.state,
		Cards:   []coffee.Display{},
		Lines:   c.cart.Entries(),
		Total:   c.cart.Total(),
		Count:   c.cart.Count(),
		Message: c.message,
	}
	if c.fetchErr != nil {
		s.Status = MsgFetchFailed
		return s
	}
	for _, it := range c.View() {
		s.Cards = append(s.Cards, coffee.Present(it))
	}
	if len(s.Cards) == 0 {
		s.Status = MsgNoMatches
	}
	return s
}
