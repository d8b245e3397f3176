// Package custom holds small extensions registered through the cmd, api and
// graphql registries. Import it for side effects.
package custom

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"coffeebar.GO/api"
	"coffeebar.GO/cmd"
	gqlregistry "coffeebar.GO/graphql/registry"
	"coffeebar.GO/service/books"
	"coffeebar.GO/service/coffee"
)

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func sortOptions() []option {
	out := make([]option, 0, len(coffee.SortOptions))
	for _, o := range coffee.SortOptions {
		out = append(out, option{Value: string(o.Mode), Label: o.Label})
	}
	return out
}

func ageOptions() []option {
	out := make([]option, 0, len(books.Ages))
	for _, a := range books.Ages {
		out = append(out, option{Value: string(a), Label: a.Label()})
	}
	return out
}

func init() {
	// GraphQL: _extension(name: "sortModes") and _extension(name: "bookFilters")
	gqlregistry.Register("sortModes", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return sortOptions(), nil
	})
	gqlregistry.Register("bookFilters", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"genres": books.Genres, "ages": ageOptions()}, nil
	})

	// CLI
	cmd.Register(&cobra.Command{
		Use:   "coffee:sorts",
		Short: "List the sort modes accepted by coffee:list --sort",
		Run: func(c *cobra.Command, args []string) {
			for _, o := range sortOptions() {
				fmt.Fprintf(c.OutOrStdout(), "%-12s %s\n", o.Value, o.Label)
			}
		},
	})

	// HTTP
	api.RegisterGET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
