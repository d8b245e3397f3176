package coffee

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleItems() []Item {
	return []Item{
		{ID: NumberID(1), Title: "latte", Description: "Milky", Ingredients: []string{"Espresso", "Milk"}, Price: 40, Kind: KindHot},
		{ID: NumberID(2), Title: "Americano", Description: "Diluted", Ingredients: []string{"Espresso", "Water"}, Price: 30, Kind: KindHot},
		{ID: NumberID(3), Title: "Cortado", Description: "Small", Ingredients: []string{"Espresso", "Steamed milk"}, Price: 30, Kind: KindHot},
		{ID: NumberID(60), Title: "Iced Coffee", Description: "Chilled", Ingredients: []string{"Coffee", "Ice"}, Price: 50, Kind: KindCold},
		{ID: NumberID(61), Title: "Frapino", Description: "Blended", Ingredients: []string{"Ice", "Cream"}, Price: 45, Kind: KindCold},
	}
}

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestApplyEmptyQueryIsPermutationOfKind(t *testing.T) {
	items := sampleItems()
	for _, mode := range []SortMode{SortNone, SortTitleAsc, SortTitleDesc, SortPriceAsc, SortPriceDesc, "bogus"} {
		got := titles(Apply(items, Selection{Kind: KindHot, Sort: mode}))
		sort.Strings(got)
		want := []string{"Americano", "Cortado", "latte"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("sort %q (-want +got):\n%s", mode, diff)
		}
	}
}

func TestApplyOrdering(t *testing.T) {
	items := sampleItems()
	tests := []struct {
		sel  Selection
		want []string
	}{
		{Selection{Kind: KindHot}, []string{"latte", "Americano", "Cortado"}},
		{Selection{Kind: KindHot, Sort: "unknown"}, []string{"latte", "Americano", "Cortado"}},
		{Selection{Kind: KindHot, Sort: SortTitleAsc}, []string{"Americano", "Cortado", "latte"}},
		{Selection{Kind: KindHot, Sort: SortTitleDesc}, []string{"latte", "Cortado", "Americano"}},
		{Selection{Kind: KindHot, Sort: SortPriceAsc}, []string{"Americano", "Cortado", "latte"}},
		{Selection{Kind: KindHot, Sort: SortPriceDesc}, []string{"latte", "Americano", "Cortado"}},
		{Selection{Kind: KindCold, Sort: SortPriceAsc}, []string{"Frapino", "Iced Coffee"}},
	}
	for _, tt := range tests {
		got := titles(Apply(items, tt.sel))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Apply(%+v) (-want +got):\n%s", tt.sel, diff)
		}
	}
}

func TestApplyPriceAscIsNonDecreasing(t *testing.T) {
	got := Apply(sampleItems(), Selection{Kind: KindHot, Sort: SortPriceAsc})
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("prices out of order at %d: %d > %d", i, got[i-1].Price, got[i].Price)
		}
	}
}

func TestApplyTextFilter(t *testing.T) {
	items := sampleItems()
	tests := []struct {
		sel  Selection
		want []string
	}{
		{Selection{Kind: KindHot, Text: "  MILK "}, []string{"latte", "Cortado"}},
		{Selection{Kind: KindHot, Text: "diluted"}, []string{"Americano"}},
		{Selection{Kind: KindCold, Text: "ice"}, []string{"Iced Coffee", "Frapino"}},
		{Selection{Kind: KindCold, Text: "espresso"}, []string{}},
	}
	for _, tt := range tests {
		got := titles(Apply(items, tt.sel))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Apply(%+v) (-want +got):\n%s", tt.sel, diff)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	before := titles(items)
	Apply(items, Selection{Kind: KindHot, Sort: SortTitleAsc})
	if diff := cmp.Diff(before, titles(items)); diff != "" {
		t.Errorf("input changed (-before +after):\n%s", diff)
	}
}
