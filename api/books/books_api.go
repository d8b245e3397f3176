package books

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeebar.GO/api"
	"coffeebar.GO/app"
	booksService "coffeebar.GO/service/books"
)

func init() {
	api.RegisterModule(RegisterBooksRoutes)
}

// SearchResponse is the body of GET /api/books.
type SearchResponse struct {
	Query   string              `json:"query"`
	Genre   string              `json:"genre"`
	Age     booksService.Age    `json:"age"`
	Books   []booksService.Book `json:"books"`
	Message string              `json:"message,omitempty"`
}

func RegisterBooksRoutes(apiGroup *echo.Group, deps *app.Deps) {
	// GET /api/books?q=dragon&genre=fantasy&age=ya
	apiGroup.GET("/books", func(c echo.Context) error {
		q, genre := c.QueryParam("q"), c.QueryParam("genre")
		age := booksService.Age(c.QueryParam("age"))
		if age == "" {
			age = booksService.AgeAll
		}
		docs, err := deps.Books.Search(c.Request().Context(), q, genre)
		if err != nil {
			return api.JSONError(c, err, booksService.MsgFetchFailed)
		}
		res := SearchResponse{
			Query: booksService.BuildQuery(q, genre, deps.Config.BooksDefaultQuery),
			Genre: genre,
			Age:   age,
			Books: booksService.Cards(booksService.ApplyFilters(docs, age)),
		}
		if len(res.Books) == 0 {
			res.Message = booksService.MsgNoResults
		}
		return c.JSON(http.StatusOK, res)
	})
}
