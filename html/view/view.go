// Package view turns shop and book state into page models. Every
// interactive element is described as an Action; the HTML handlers own the
// routes the actions point to.
package view

import (
	"net/url"

	"coffeebar.GO/service/books"
	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

// Field is a hidden form value sent with an Action.
type Field struct {
	Name  string
	Value string
}

// Action is a button backed by a form submission or a link.
type Action struct {
	Label    string
	Method   string
	Path     string
	Fields   []Field
	Disabled bool
	Active   bool
}

// Link is a GET action pointing at path with the given query.
func Link(label, path string, q url.Values) Action {
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	return Action{Label: label, Method: "GET", Path: path}
}

// Notice is a transient message.
type Notice struct {
	Kind           string
	Text           string
	DismissAfterMS int64
}

func NoticeFrom(m *cart.Message) *Notice {
	if m == nil {
		return nil
	}
	return &Notice{Kind: string(m.Kind), Text: m.Text, DismissAfterMS: m.DismissAfter.Milliseconds()}
}

// Option is one entry of a select box.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Card is a coffee card with its add-to-cart action.
type Card struct {
	coffee.Display
	Add Action
}

// CartRow is one cart line with its quantity controls.
type CartRow struct {
	ID     string
	Title  string
	Badge  string
	Qty    int
	Price  string
	Sum    string
	Inc    Action
	Dec    Action
	Remove Action
}

// CoffeePage is the model of the coffee page.
type CoffeePage struct {
	Title    string
	Kinds    []Action
	Kind     string
	Query    string
	Sorts    []Option
	Cards    []Card
	Status   string
	Rows     []CartRow
	Total    string
	Count    int
	Checkout Action
	Notice   *Notice
}

// StateFields carries the current selection through form posts.
func StateFields(st shop.State) []Field {
	return []Field{
		{Name: "kind", Value: string(st.Kind)},
		{Name: "q", Value: st.Text},
		{Name: "sort", Value: string(st.Sort)},
	}
}

func withState(st shop.State, extra ...Field) []Field {
	return append(StateFields(st), extra...)
}

// Coffee builds the coffee page from a screen.
func Coffee(title string, s shop.Screen, notice *Notice) CoffeePage {
	st := s.State
	p := CoffeePage{
		Title:  title,
		Kind:   string(st.Kind),
		Query:  st.Text,
		Status: s.Status,
		Total:  coffee.FormatPrice(s.Total),
		Count:  s.Count,
		Notice: notice,
		Checkout: Action{
			Label:  "Checkout",
			Method: "POST",
			Path:   "/cart/checkout",
			Fields: StateFields(st),
		},
	}
	if p.Notice == nil {
		p.Notice = NoticeFrom(s.Message)
	}

	for _, k := range []coffee.Kind{coffee.KindHot, coffee.KindCold} {
		// Switching kind clears the search; the active kind links to itself.
		q := url.Values{"kind": {string(k)}}
		if st.Sort != "" {
			q.Set("sort", string(st.Sort))
		}
		a := Link(k.Label(), "/coffee", q)
		if k == st.Kind {
			a = Link(k.Label(), "/coffee", currentQuery(st))
			a.Active = true
		}
		p.Kinds = append(p.Kinds, a)
	}

	for _, o := range coffee.SortOptions {
		p.Sorts = append(p.Sorts, Option{Value: string(o.Mode), Label: o.Label, Selected: o.Mode == st.Sort})
	}

	for _, d := range s.Cards {
		add := Action{
			Label:  "Add to cart",
			Method: "POST",
			Path:   "/cart/add",
			Fields: withState(st, Field{Name: "id", Value: d.ID}),
		}
		if d.SoldOut {
			add.Label = coffee.SoldOutSentinel.Button
			add.Disabled = true
		}
		p.Cards = append(p.Cards, Card{Display: d, Add: add})
	}

	for _, e := range s.Lines {
		id := e.Item.Key()
		qty := func(label, delta string) Action {
			return Action{
				Label:  label,
				Method: "POST",
				Path:   "/cart/qty",
				Fields: withState(st, Field{Name: "id", Value: id}, Field{Name: "delta", Value: delta}),
			}
		}
		p.Rows = append(p.Rows, CartRow{
			ID:    id,
			Title: e.Item.Title,
			Badge: e.Item.Kind.Label(),
			Qty:   e.Qty,
			Price: coffee.FormatPrice(e.Price),
			Sum:   coffee.FormatPrice(e.Sum()),
			Inc:   qty("+", "1"),
			Dec:   qty("−", "-1"),
			Remove: Action{
				Label:  "Remove",
				Method: "POST",
				Path:   "/cart/remove",
				Fields: withState(st, Field{Name: "id", Value: id}),
			},
		})
	}
	return p
}

func currentQuery(st shop.State) url.Values {
	q := url.Values{"kind": {string(st.Kind)}}
	if st.Text != "" {
		q.Set("q", st.Text)
	}
	if st.Sort != "" {
		q.Set("sort", string(st.Sort))
	}
	return q
}

// CoffeeURL is the coffee page URL for st.
func CoffeeURL(st shop.State) string {
	return "/coffee?" + currentQuery(st).Encode()
}

// BooksPage is the model of the book search page.
type BooksPage struct {
	Title  string
	Query  string
	Genres []Option
	Ages   []Option
	Books  []books.Book
	Status string
}

// Books builds the book search page. err reports a failed search.
func Books(title, query, genre string, age books.Age, results []books.Book, err error) BooksPage {
	p := BooksPage{Title: title, Query: query, Books: results}
	if genre == "" {
		genre = books.GenreAll
	}
	for _, g := range books.Genres {
		label := g
		if g == books.GenreAll {
			label = "All genres"
		}
		p.Genres = append(p.Genres, Option{Value: g, Label: label, Selected: g == genre})
	}
	if age == "" {
		age = books.AgeAll
	}
	for _, a := range books.Ages {
		p.Ages = append(p.Ages, Option{Value: string(a), Label: a.Label(), Selected: a == age})
	}
	switch {
	case err != nil:
		p.Status = books.MsgFetchFailed
		p.Books = nil
	case len(results) == 0:
		p.Status = books.MsgNoResults
	}
	return p
}
