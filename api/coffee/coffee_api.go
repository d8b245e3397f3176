package coffee

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeebar.GO/api"
	"coffeebar.GO/app"
	coffeeService "coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

func init() {
	api.RegisterModule(RegisterCoffeeRoutes)
}

// ListResponse is the body of GET /api/coffee.
type ListResponse struct {
	Kind    coffeeService.Kind      `json:"kind"`
	Query   string                  `json:"query"`
	Sort    coffeeService.SortMode  `json:"sort"`
	Items   []coffeeService.Display `json:"items"`
	Message string                  `json:"message,omitempty"`
}

func RegisterCoffeeRoutes(apiGroup *echo.Group, deps *app.Deps) {
	g := apiGroup.Group("/coffee")

	// GET /api/coffee?kind=hot&q=milk&sort=price-asc
	g.GET("", func(c echo.Context) error {
		st := shop.ParseState(c.QueryParam("kind"), c.QueryParam("q"), c.QueryParam("sort"))
		items, err := deps.Catalog.Load(c.Request().Context())
		if err != nil {
			return api.JSONError(c, err, shop.MsgFetchFailed)
		}
		view := coffeeService.Apply(items, coffeeService.Selection{Kind: st.Kind, Text: st.Text, Sort: st.Sort})
		res := ListResponse{
			Kind:  st.Kind,
			Query: st.Text,
			Sort:  st.Sort,
			Items: make([]coffeeService.Display, 0, len(view)),
		}
		for _, it := range view {
			res.Items = append(res.Items, coffeeService.Present(it))
		}
		if len(res.Items) == 0 {
			res.Message = shop.MsgNoMatches
		}
		return c.JSON(http.StatusOK, res)
	})

	// GET /api/coffee/:id returns the normalized item
	g.GET("/:id", func(c echo.Context) error {
		if _, err := deps.Catalog.Load(c.Request().Context()); err != nil {
			return api.JSONError(c, err, shop.MsgFetchFailed)
		}
		it, ok := deps.Catalog.Find(c.Param("id"))
		if !ok {
			return api.JSONError(c, shop.ErrUnknownItem, "")
		}
		return c.JSON(http.StatusOK, it)
	})

	// POST /api/coffee/refresh drops the cached catalog and refetches
	g.POST("/refresh", func(c echo.Context) error {
		deps.Catalog.Invalidate()
		items, err := deps.Catalog.Refresh(c.Request().Context())
		if err != nil {
			return api.JSONError(c, err, shop.MsgFetchFailed)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": len(items)})
	})
}
