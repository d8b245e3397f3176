package coffee

import "strings"

// Sentinel is the fixed presentation that replaces a broken record.
type Sentinel struct {
	Title       string
	Description string
	Ingredients string
	Image       string
	Badge       string
	Price       string
	Button      string
}

// SoldOutSentinel is shown instead of records that look like placeholders.
var SoldOutSentinel = Sentinel{
	Title:       "Frapino Vegan Strawberry",
	Description: "",
	Ingredients: "Vegan Frappino with coconut drink with strawberry and vanilla flavor. Topped with soy whip.",
	Image:       "https://placehold.co/800x500?text=SOLD+OUT",
	Badge:       "Sold out",
	Price:       "—",
	Button:      "Out of stock",
}

// NoIngredients is shown when an item lists none.
const NoIngredients = "–"

// Display is the rendered form of one card.
type Display struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Image       string `json:"image"`
	Badge       string `json:"badge"`
	Price       string `json:"price"`
	SoldOut     bool   `json:"sold_out"`
}

// IsSoldOut reports whether the item looks like placeholder data.
func IsSoldOut(it Item) bool {
	return it.Title == "" ||
		strings.EqualFold(it.Title, "title") ||
		strings.EqualFold(it.Description, "desc") ||
		it.Image == PlaceholderImage
}

// Present renders an item for display, masking sold-out records. The item
// itself is left untouched.
func Present(it Item) Display {
	if IsSoldOut(it) {
		return Display{
			ID:          it.Key(),
			Title:       SoldOutSentinel.Title,
			Description: SoldOutSentinel.Description,
			Ingredients: SoldOutSentinel.Ingredients,
			Image:       SoldOutSentinel.Image,
			Badge:       SoldOutSentinel.Badge,
			Price:       SoldOutSentinel.Price,
			SoldOut:     true,
		}
	}
	ingredients := NoIngredients
	if len(it.Ingredients) > 0 {
		ingredients = strings.Join(it.Ingredients, ", ")
	}
	return Display{
		ID:          it.Key(),
		Title:       it.Title,
		Description: it.Description,
		Ingredients: ingredients,
		Image:       it.Image,
		Badge:       it.Kind.Label(),
		Price:       FormatPrice(it.Price),
	}
}
