package resolvers

import (
	"context"

	gqlmodels "coffeebar.GO/graphql/models"
	"coffeebar.GO/service/books"
)

func (r *Resolver) Books(ctx context.Context, query, genre, age string) (*gqlmodels.BookList, error) {
	if genre == "" {
		genre = books.GenreAll
	}
	if age == "" {
		age = string(books.AgeAll)
	}
	docs, err := r.deps.Books.Search(ctx, query, genre)
	if err != nil {
		return nil, &UserError{Message: books.MsgFetchFailed, Err: err}
	}
	out := &gqlmodels.BookList{
		Query: books.BuildQuery(query, genre, r.deps.Config.BooksDefaultQuery),
		Genre: genre,
		Age:   age,
		Books: gqlmodels.NewBooks(books.Cards(books.ApplyFilters(docs, books.Age(age)))),
	}
	if len(out.Books) == 0 {
		msg := books.MsgNoResults
		out.Message = &msg
	}
	return out, nil
}
