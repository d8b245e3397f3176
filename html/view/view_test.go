package view

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"coffeebar.GO/service/books"
	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

func field(fs []Field, name string) string {
	for _, f := range fs {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestCoffee_KindLinks(t *testing.T) {
	st := shop.State{Kind: coffee.KindCold, Text: "ice", Sort: coffee.SortPriceAsc}
	p := Coffee("Coffeebar", shop.Screen{State: st}, nil)

	if len(p.Kinds) != 2 {
		t.Fatalf("kinds = %+v", p.Kinds)
	}
	hot, cold := p.Kinds[0], p.Kinds[1]
	if hot.Active || hot.Path != "/coffee?kind=hot&sort=price-asc" {
		t.Errorf("hot link = %+v; switching kind should drop the search", hot)
	}
	if !cold.Active || cold.Path != "/coffee?kind=cold&q=ice&sort=price-asc" {
		t.Errorf("cold link = %+v", cold)
	}
	if !p.Sorts[3].Selected || p.Sorts[3].Value != string(coffee.SortPriceAsc) {
		t.Errorf("sorts = %+v", p.Sorts)
	}
}

func TestCoffee_CardsAndRows(t *testing.T) {
	espresso := coffee.Item{ID: coffee.NumberID(1), Title: "Espresso", Kind: coffee.KindHot, Price: 30, Image: "https://x.example.com/e.png"}
	broken := coffee.Item{ID: coffee.NumberID(3), Title: "title", Kind: coffee.KindHot}
	s := shop.Screen{
		State: shop.DefaultState(),
		Cards: []coffee.Display{coffee.Present(espresso), coffee.Present(broken)},
		Lines: []cart.Entry{{Item: espresso, Qty: 2, Price: 30}},
		Total: 60,
		Count: 2,
	}
	p := Coffee("Coffeebar", s, nil)

	if p.Cards[0].Add.Disabled || field(p.Cards[0].Add.Fields, "id") != "1" {
		t.Errorf("espresso add = %+v", p.Cards[0].Add)
	}
	if !p.Cards[1].Add.Disabled || p.Cards[1].Add.Label != coffee.SoldOutSentinel.Button {
		t.Errorf("sold out add = %+v", p.Cards[1].Add)
	}

	want := CartRow{ID: "1", Title: "Espresso", Badge: "Hot", Qty: 2, Price: "30 kr", Sum: "60 kr"}
	got := p.Rows[0]
	got.Inc, got.Dec, got.Remove = Action{}, Action{}, Action{}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
	if field(p.Rows[0].Dec.Fields, "delta") != "-1" || field(p.Rows[0].Inc.Fields, "kind") != "hot" {
		t.Errorf("qty actions = %+v / %+v", p.Rows[0].Dec, p.Rows[0].Inc)
	}
	if p.Total != "60 kr" {
		t.Errorf("total = %q", p.Total)
	}
}

func TestCoffee_NoticePriority(t *testing.T) {
	msg := cart.OrderPlaced
	p := Coffee("x", shop.Screen{State: shop.DefaultState(), Message: &msg}, nil)
	if p.Notice == nil || p.Notice.DismissAfterMS != 3000 {
		t.Errorf("notice = %+v", p.Notice)
	}
	explicit := &Notice{Kind: "advisory", Text: "hi"}
	if p := Coffee("x", shop.Screen{State: shop.DefaultState(), Message: &msg}, explicit); p.Notice != explicit {
		t.Errorf("explicit notice should win, got %+v", p.Notice)
	}
}

func TestBooks_Status(t *testing.T) {
	p := Books("Books", "dragon", "", "", nil, errors.New("boom"))
	if p.Status != books.MsgFetchFailed || p.Books != nil {
		t.Errorf("failed page = %+v", p)
	}
	if !p.Genres[0].Selected || !p.Ages[0].Selected {
		t.Errorf("defaults not selected: %+v %+v", p.Genres[0], p.Ages[0])
	}

	p = Books("Books", "dragon", "fantasy", books.AgeYA, []books.Book{}, nil)
	if p.Status != books.MsgNoResults {
		t.Errorf("status = %q", p.Status)
	}
}
