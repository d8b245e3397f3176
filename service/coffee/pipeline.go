package coffee

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode orders the displayed items.
type SortMode string

const (
	SortNone      SortMode = ""
	SortTitleAsc  SortMode = "title-asc"
	SortTitleDesc SortMode = "title-desc"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

// SortOption is one entry of the sort selector.
type SortOption struct {
	Mode  SortMode
	Label string
}

var SortOptions = []SortOption{
	{SortNone, "Default"},
	{SortTitleAsc, "Name A–Z"},
	{SortTitleDesc, "Name Z–A"},
	{SortPriceAsc, "Price low–high"},
	{SortPriceDesc, "Price high–low"},
}

// Selection is the user's input to the pipeline.
type Selection struct {
	Kind Kind
	Text string
	Sort SortMode
}

// Apply derives the displayed items from the full collection: kind first,
// then the free-text filter, then ordering. Unknown sort modes keep the
// collection order. items is never modified.
func Apply(items []Item, sel Selection) []Item {
	term := strings.ToLower(strings.TrimSpace(sel.Text))

	view := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Kind != sel.Kind {
			continue
		}
		if term != "" && !strings.Contains(haystack(it), term) {
			continue
		}
		view = append(view, it)
	}

	switch sel.Sort {
	case SortTitleAsc, SortTitleDesc:
		col := collate.New(language.Und)
		desc := sel.Sort == SortTitleDesc
		sort.SliceStable(view, func(i, j int) bool {
			if desc {
				return col.CompareString(view[j].Title, view[i].Title) < 0
			}
			return col.CompareString(view[i].Title, view[j].Title) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price < view[j].Price })
	case SortPriceDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price > view[j].Price })
	}
	return view
}

func haystack(it Item) string {
	return strings.ToLower(it.Title + " " + it.Description + " " + strings.Join(it.Ingredients, " "))
}
