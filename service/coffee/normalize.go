package coffee

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

const (
	// DefaultTitle replaces a missing title.
	DefaultTitle = "Unknown coffee"

	// Records without an explicit kind are hot below this id.
	kindThreshold = 50

	priceBase = 25
	priceSpan = 45
)

// Keyword overrides on the lowercased title. Hot keywords are checked first.
var (
	hotKeywords  = []string{"espresso", "americano", "macchiato", "ristretto"}
	coldKeywords = []string{"frapino", "lemonad", "apelsin"}
)

// Normalize converts both listings into Items, hot records first. The whole
// collection is rebuilt on every call.
func Normalize(hot, cold []RawRecord) []Item {
	items := make([]Item, 0, len(hot)+len(cold))
	for _, raw := range hot {
		items = append(items, NormalizeRecord(raw))
	}
	for _, raw := range cold {
		items = append(items, NormalizeRecord(raw))
	}
	return items
}

// NormalizeRecord converts one upstream record into an Item.
func NormalizeRecord(raw RawRecord) Item {
	title := DefaultTitle
	if v, ok := raw["title"]; ok && v != nil {
		title = stringify(v)
	}
	lower := strings.ToLower(title)
	kind := KindOf(raw, lower)

	id, ok := idFromRaw(raw["id"])
	if !ok {
		id = StringID(string(kind) + "-" + slug(lower))
	}

	description := ""
	if v, ok := raw["description"]; ok && v != nil {
		description = stringify(v)
	}

	return Item{
		ID:          id,
		Title:       title,
		Description: description,
		Ingredients: ingredients(raw["ingredients"]),
		Image:       ResolveImage(raw),
		Price:       Price(raw),
		Kind:        kind,
	}
}

// KindOf picks the explicit kind field, falls back to the id threshold, and
// then lets title keywords override either.
func KindOf(raw RawRecord, lowerTitle string) Kind {
	kind := KindCold
	if explicit, ok := explicitKind(raw["kind"]); ok {
		kind = explicit
	} else if n, ok := thresholdID(raw); ok && n < kindThreshold {
		kind = KindHot
	}

	if k, ok := keywordKind(lowerTitle); ok {
		kind = k
	}
	return kind
}

// explicitKind accepts only the two known kinds; anything else is ignored.
func explicitKind(v interface{}) (Kind, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	k, err := ParseKind(s)
	return k, err == nil
}

func keywordKind(lowerTitle string) (Kind, bool) {
	for _, kw := range hotKeywords {
		if strings.Contains(lowerTitle, kw) {
			return KindHot, true
		}
	}
	for _, kw := range coldKeywords {
		if strings.Contains(lowerTitle, kw) {
			return KindCold, true
		}
	}
	return "", false
}

// Price derives the display price from the raw id and raw title length.
func Price(raw RawRecord) int {
	id, _ := numericID(raw["id"])
	title := ""
	if v, ok := raw["title"]; ok && v != nil {
		title = stringify(v)
	}
	return PriceFor(id, titleLength(title))
}

// PriceFor is 25 + ((id + titleLength) mod 45); the result is always in [25,69].
func PriceFor(id float64, titleLength int) int {
	key := int64(math.Floor(id)) + int64(titleLength)
	mod := key % priceSpan
	if mod < 0 {
		mod += priceSpan
	}
	return priceBase + int(mod)
}

// titleLength counts UTF-16 code units, matching how the listing front-end
// measured titles.
func titleLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func idFromRaw(v interface{}) (ID, bool) {
	switch val := v.(type) {
	case nil:
		return ID{}, false
	case float64:
		return NumberID(val), true
	case string:
		return StringID(val), true
	default:
		return StringID(stringify(val)), true
	}
}

// thresholdID is the id as compared against the hot/cold threshold. A
// present but null, blank or boolean id counts as a number (null and blank
// are 0); a missing id never does.
func thresholdID(raw RawRecord) (float64, bool) {
	v, present := raw["id"]
	if !present {
		return 0, false
	}
	switch val := v.(type) {
	case nil:
		return 0, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		if strings.TrimSpace(val) == "" {
			return 0, true
		}
	}
	return numericID(v)
}

// numericID returns the id as a number when it is one or is a numeric string.
func numericID(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func ingredients(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, el := range list {
		if el == nil {
			out = append(out, "")
			continue
		}
		out = append(out, stringify(el))
	}
	return out
}

// slug replaces every whitespace run with a single hyphen.
func slug(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
