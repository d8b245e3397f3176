package cart

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeebar.GO/api"
	"coffeebar.GO/app"
	"coffeebar.GO/core/session"
	cartService "coffeebar.GO/service/cart"
	"coffeebar.GO/service/shop"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// Line is one cart row as returned by the API.
type Line struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Qty   int    `json:"qty"`
	Price int    `json:"price"`
	Sum   int    `json:"sum"`
}

// Response is the cart body returned by every /api/cart route.
type Response struct {
	Lines   []Line   `json:"lines"`
	Total   int      `json:"total"`
	Count   int      `json:"count"`
	Message *Message `json:"message,omitempty"`
}

type Message struct {
	Kind           string `json:"kind"`
	Text           string `json:"text"`
	DismissAfterMS int64  `json:"dismiss_after_ms"`
}

// NewResponse renders c.
func NewResponse(c *cartService.Cart, msg *cartService.Message) Response {
	res := Response{Lines: []Line{}, Total: c.Total(), Count: c.Count()}
	for _, e := range c.Entries() {
		res.Lines = append(res.Lines, Line{
			ID:    e.Item.Key(),
			Title: e.Item.Title,
			Kind:  string(e.Item.Kind),
			Qty:   e.Qty,
			Price: e.Price,
			Sum:   e.Sum(),
		})
	}
	if msg != nil {
		res.Message = &Message{
			Kind:           string(msg.Kind),
			Text:           msg.Text,
			DismissAfterMS: msg.DismissAfter.Milliseconds(),
		}
	}
	return res
}

func RegisterCartRoutes(apiGroup *echo.Group, deps *app.Deps) {
	g := apiGroup.Group("/cart")

	g.GET("", func(c echo.Context) error {
		ctx := c.Request().Context()
		cart := cartService.Load(ctx, deps.Store, session.CartKey(c), deps.Log)
		return c.JSON(http.StatusOK, NewResponse(cart, nil))
	})

	// POST /api/cart/items {"id": "3"}
	g.POST("/items", func(c echo.Context) error {
		var body struct {
			ID string `json:"id"`
		}
		if err := c.Bind(&body); err != nil || body.ID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
		}
		ctx := c.Request().Context()
		ctl := deps.Shop(ctx, session.CartKey(c), shop.DefaultState())
		if err := ctl.Load(ctx); err != nil {
			return api.JSONError(c, err, shop.MsgFetchFailed)
		}
		if _, err := ctl.AddToCart(ctx, body.ID); err != nil {
			return api.JSONError(c, err, "")
		}
		return c.JSON(http.StatusOK, NewResponse(ctl.Cart(), nil))
	})

	// PATCH /api/cart/items/:id {"delta": -1}
	g.PATCH("/items/:id", func(c echo.Context) error {
		var body struct {
			Delta int `json:"delta"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		ctx := c.Request().Context()
		cart := cartService.Load(ctx, deps.Store, session.CartKey(c), deps.Log)
		cart.AdjustQty(ctx, c.Param("id"), body.Delta)
		return c.JSON(http.StatusOK, NewResponse(cart, nil))
	})

	g.DELETE("/items/:id", func(c echo.Context) error {
		ctx := c.Request().Context()
		cart := cartService.Load(ctx, deps.Store, session.CartKey(c), deps.Log)
		cart.Remove(ctx, c.Param("id"))
		return c.JSON(http.StatusOK, NewResponse(cart, nil))
	})

	g.POST("/checkout", func(c echo.Context) error {
		ctx := c.Request().Context()
		cart := cartService.Load(ctx, deps.Store, session.CartKey(c), deps.Log)
		msg := cart.Checkout(ctx)
		return c.JSON(http.StatusOK, NewResponse(cart, &msg))
	})
}
