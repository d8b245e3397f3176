package html

import (
	"bytes"
	"strings"
	"testing"

	"coffeebar.GO/html/view"
	"coffeebar.GO/service/books"
	"coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

func TestRenderCoffeePage(t *testing.T) {
	tmpl, err := NewTemplate()
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	it := coffee.Item{ID: coffee.NumberID(1), Title: "Espresso <b>", Kind: coffee.KindHot, Price: 30, Image: "https://x.example.com/e.png"}
	page := view.Coffee("Coffeebar", shop.Screen{
		State: shop.DefaultState(),
		Cards: []coffee.Display{coffee.Present(it)},
	}, nil)

	var b bytes.Buffer
	if err := tmpl.Render(&b, "coffee.html", page, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "Espresso &lt;b&gt;") {
		t.Error("title should be escaped")
	}
	if !strings.Contains(out, `action="/cart/add"`) {
		t.Error("missing add-to-cart form")
	}
}

func TestRenderBooksPage(t *testing.T) {
	tmpl, err := NewTemplate()
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	page := view.Books("Books", "dragon", "fantasy", books.AgeAll, []books.Book{{Title: "Dragon War", Author: "B. Writer", Year: "1999", Cover: books.NoCoverImage}}, nil)

	var b bytes.Buffer
	if err := tmpl.Render(&b, "books.html", page, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"Dragon War", "B. Writer", `value="dragon"`} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("%q missing from page", want)
		}
	}
}
