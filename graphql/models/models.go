package models

import (
	gql "github.com/graph-gophers/graphql-go"

	"coffeebar.GO/service/books"
	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/coffee"
)

// --- Coffee ---

type CoffeeList struct {
	Kind    string        `json:"kind"`
	Query   string        `json:"query"`
	Sort    string        `json:"sort"`
	Items   []*CoffeeCard `json:"items"`
	Message *string       `json:"message,omitempty"`
}

type CoffeeCard struct {
	ID          gql.ID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Image       string `json:"image"`
	Badge       string `json:"badge"`
	Price       string `json:"price"`
	SoldOut     bool   `json:"sold_out"`
}

type Coffee struct {
	ID          gql.ID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	Price       int32    `json:"price"`
	Kind        string   `json:"kind"`
}

func NewCoffeeCard(d coffee.Display) *CoffeeCard {
	return &CoffeeCard{
		ID:          gql.ID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Ingredients: d.Ingredients,
		Image:       d.Image,
		Badge:       d.Badge,
		Price:       d.Price,
		SoldOut:     d.SoldOut,
	}
}

func NewCoffee(it coffee.Item) *Coffee {
	ingredients := it.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return &Coffee{
		ID:          gql.ID(it.Key()),
		Title:       it.Title,
		Description: it.Description,
		Ingredients: ingredients,
		Image:       it.Image,
		Price:       int32(it.Price),
		Kind:        string(it.Kind),
	}
}

// --- Books ---

type BookList struct {
	Query   string  `json:"query"`
	Genre   string  `json:"genre"`
	Age     string  `json:"age"`
	Books   []*Book `json:"books"`
	Message *string `json:"message,omitempty"`
}

type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Cover  string `json:"cover"`
}

func NewBooks(list []books.Book) []*Book {
	out := make([]*Book, 0, len(list))
	for _, b := range list {
		out = append(out, &Book{Title: b.Title, Author: b.Author, Year: b.Year, Cover: b.Cover})
	}
	return out
}

// --- Cart ---

type Cart struct {
	Lines []*CartLine `json:"lines"`
	Total int32       `json:"total"`
	Count int32       `json:"count"`
}

type CartLine struct {
	ID    gql.ID `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Qty   int32  `json:"qty"`
	Price int32  `json:"price"`
	Sum   int32  `json:"sum"`
}

type Notice struct {
	Kind           string `json:"kind"`
	Text           string `json:"text"`
	DismissAfterMs int32  `json:"dismiss_after_ms"`
}

type CheckoutResult struct {
	Message *Notice `json:"message"`
	Cart    *Cart   `json:"cart"`
}

func NewCart(c *cart.Cart) *Cart {
	out := &Cart{Lines: []*CartLine{}, Total: int32(c.Total()), Count: int32(c.Count())}
	for _, e := range c.Entries() {
		out.Lines = append(out.Lines, &CartLine{
			ID:    gql.ID(e.Item.Key()),
			Title: e.Item.Title,
			Kind:  string(e.Item.Kind),
			Qty:   int32(e.Qty),
			Price: int32(e.Price),
			Sum:   int32(e.Sum()),
		})
	}
	return out
}

func NewNotice(m cart.Message) *Notice {
	return &Notice{Kind: string(m.Kind), Text: m.Text, DismissAfterMs: int32(m.DismissAfter.Milliseconds())}
}
