package coffee

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawRecord is one untyped JSON object from an upstream listing.
type RawRecord = map[string]interface{}

// Kind is the drink category.
type Kind string

const (
	KindHot  Kind = "hot"
	KindCold Kind = "cold"
)

var ErrUnknownKind = errors.New("unknown kind")

// ParseKind accepts "hot" or "cold" in any case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindHot:
		return KindHot, nil
	case KindCold:
		return KindCold, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Label is the badge text shown next to items of this kind.
func (k Kind) Label() string {
	if k == KindHot {
		return "Hot"
	}
	return "Cold"
}

// ID identifies an item. Upstream listings use numbers; synthesized ids are
// strings. Both forms survive a JSON round trip unchanged.
type ID struct {
	num   float64
	str   string
	isNum bool
}

func NumberID(n float64) ID { return ID{num: n, isNum: true} }

func StringID(s string) ID { return ID{str: s} }

// Number returns the numeric value of a numeric id.
func (id ID) Number() (float64, bool) { return id.num, id.isNum }

// String is the form used as cart key and in URLs.
func (id ID) String() string {
	if id.isNum {
		return formatNumber(id.num)
	}
	return id.str
}

func (id ID) Equal(other ID) bool { return id == other }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.isNum {
		return json.Marshal(id.num)
	}
	return json.Marshal(id.str)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case float64:
		*id = NumberID(val)
	case string:
		*id = StringID(val)
	case nil:
		*id = ID{}
	default:
		return fmt.Errorf("coffee: id must be a number or string, got %s", string(b))
	}
	return nil
}

// formatNumber renders integers without a fractional part.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Item is a normalized, display-ready drink.
type Item struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	Price       int      `json:"price"`
	Kind        Kind     `json:"kind"`
}

// Key is the cart key for the item.
func (it Item) Key() string { return it.ID.String() }
