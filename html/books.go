package html

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeebar.GO/api"
	"coffeebar.GO/app"
	"coffeebar.GO/html/view"
	"coffeebar.GO/service/books"
)

func init() {
	api.RegisterHTMLModule(RegisterBooksHTMLRoutes)
}

// RegisterBooksHTMLRoutes registers the book search page
func RegisterBooksHTMLRoutes(e *echo.Echo, deps *app.Deps) {
	e.GET("/books", func(c echo.Context) error {
		q := c.QueryParam("q")
		if !c.QueryParams().Has("q") {
			q = deps.Config.BooksInitialQuery
		}
		genre := c.QueryParam("genre")
		age := books.Age(c.QueryParam("age"))

		docs, err := deps.Books.Search(c.Request().Context(), q, genre)
		var cards []books.Book
		if err == nil {
			cards = books.Cards(books.ApplyFilters(docs, age))
		}
		return c.Render(http.StatusOK, "books.html",
			view.Books(deps.Config.AppName+" · Books", q, genre, age, cards, err))
	})
}
