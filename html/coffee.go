package html

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"coffeebar.GO/api"
	"coffeebar.GO/app"
	"coffeebar.GO/core/session"
	"coffeebar.GO/html/view"
	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/shop"
)

func init() {
	api.RegisterHTMLModule(RegisterCoffeeHTMLRoutes)
}

// Notices passed through the redirect after a form post.
var notices = map[string]cart.Message{
	"ordered": cart.OrderPlaced,
	"empty":   cart.EmptyCart,
	"soldout": {Kind: cart.Advisory, Text: "This drink is sold out.", DismissAfter: 2 * time.Second},
	"unknown": {Kind: cart.Advisory, Text: "This drink is no longer available.", DismissAfter: 2 * time.Second},
	"failed":  {Kind: cart.Advisory, Text: shop.MsgFetchFailed, DismissAfter: 2 * time.Second},
}

func noticeFor(code string) *view.Notice {
	m, ok := notices[code]
	if !ok {
		return nil
	}
	return view.NoticeFrom(&m)
}

// formState reads the selection from query or form values.
func formState(c echo.Context) shop.State {
	return shop.ParseState(c.FormValue("kind"), c.FormValue("q"), c.FormValue("sort"))
}

func redirectBack(c echo.Context, st shop.State, notice string) error {
	to := view.CoffeeURL(st)
	if notice != "" {
		to += "&notice=" + notice
	}
	return c.Redirect(http.StatusSeeOther, to)
}

// RegisterCoffeeHTMLRoutes registers the coffee page and its cart form actions
func RegisterCoffeeHTMLRoutes(e *echo.Echo, deps *app.Deps) {
	sess := session.Middleware(deps.Config.CartKey)

	page := func(c echo.Context) error {
		ctx := c.Request().Context()
		ctl := deps.Shop(ctx, session.CartKey(c), formState(c))
		if err := ctl.Load(ctx); err != nil {
			deps.Log.Warn("coffee page: catalog unavailable", zap.Error(err))
		}
		return c.Render(http.StatusOK, "coffee.html",
			view.Coffee(deps.Config.AppName, ctl.Screen(), noticeFor(c.QueryParam("notice"))))
	}
	e.GET("/", page, sess)
	e.GET("/coffee", page, sess)

	e.POST("/cart/add", func(c echo.Context) error {
		ctx := c.Request().Context()
		st := formState(c)
		ctl := deps.Shop(ctx, session.CartKey(c), st)
		return redirectBack(c, st, addNotice(ctx, ctl, c.FormValue("id")))
	}, sess)

	e.POST("/cart/qty", func(c echo.Context) error {
		ctx := c.Request().Context()
		st := formState(c)
		delta, err := strconv.Atoi(c.FormValue("delta"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid quantity change")
		}
		deps.Shop(ctx, session.CartKey(c), st).AdjustQty(ctx, c.FormValue("id"), delta)
		return redirectBack(c, st, "")
	}, sess)

	e.POST("/cart/remove", func(c echo.Context) error {
		ctx := c.Request().Context()
		st := formState(c)
		deps.Shop(ctx, session.CartKey(c), st).Remove(ctx, c.FormValue("id"))
		return redirectBack(c, st, "")
	}, sess)

	e.POST("/cart/checkout", func(c echo.Context) error {
		ctx := c.Request().Context()
		st := formState(c)
		msg := deps.Shop(ctx, session.CartKey(c), st).Checkout(ctx)
		if msg == cart.EmptyCart {
			return redirectBack(c, st, "empty")
		}
		return redirectBack(c, st, "ordered")
	}, sess)
}

func addNotice(ctx context.Context, ctl *shop.Controller, id string) string {
	if err := ctl.Load(ctx); err != nil {
		return "failed"
	}
	_, err := ctl.AddToCart(ctx, id)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, shop.ErrSoldOut):
		return "soldout"
	default:
		return "unknown"
	}
}
