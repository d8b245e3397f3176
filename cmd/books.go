package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"coffeebar.GO/service/books"
)

var (
	booksQuery string
	booksGenre string
	booksAge   string
)

var booksSearchCmd = &cobra.Command{
	Use:   "books:search",
	Short: "Search Open Library with genre and age filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		query := booksQuery
		if !cmd.Flags().Changed("query") {
			query = d.Config.BooksInitialQuery
		}
		docs, err := d.Books.Search(cmd.Context(), query, booksGenre)
		renderBooks(cmd.OutOrStdout(), docs, books.Age(booksAge), err)
		return nil
	},
}

func init() {
	booksSearchCmd.Flags().StringVarP(&booksQuery, "query", "q", "", "Free text query")
	booksSearchCmd.Flags().StringVarP(&booksGenre, "genre", "g", books.GenreAll, "Subject filter")
	booksSearchCmd.Flags().StringVarP(&booksAge, "age", "a", string(books.AgeAll), "all, children, ya or adult")
	rootCmd.AddCommand(booksSearchCmd)
}

// renderBooks prints one line per book that passes the age filter.
func renderBooks(w io.Writer, docs []books.Doc, age books.Age, err error) {
	if err != nil {
		fmt.Fprintln(w, errorStyle.Render(books.MsgFetchFailed))
		return
	}
	cards := books.Cards(books.ApplyFilters(docs, age))
	if len(cards) == 0 {
		fmt.Fprintln(w, mutedStyle.Render(books.MsgNoResults))
		return
	}
	for _, b := range cards {
		fmt.Fprintf(w, "%s  %s  %s\n", titleStyle.Render(b.Title), b.Author, mutedStyle.Render(b.Year))
	}
}
