package books

import "strings"

// Age is the reader-age filter.
type Age string

const (
	AgeAll      Age = "all"
	AgeChildren Age = "children"
	AgeYA       Age = "ya"
	AgeAdult    Age = "adult"
)

// Ages lists the filter options in selector order.
var Ages = []Age{AgeAll, AgeChildren, AgeYA, AgeAdult}

func (a Age) Label() string {
	switch a {
	case AgeChildren:
		return "Children"
	case AgeYA:
		return "Young adult"
	case AgeAdult:
		return "Adult"
	}
	return "All ages"
}

// FitsAge classifies d by its subjects. Unknown or empty ages accept every
// doc.
func FitsAge(d Doc, age Age) bool {
	if age == "" || age == AgeAll {
		return true
	}
	child, ya := false, false
	for _, s := range d.Subject {
		s = strings.ToLower(s)
		if strings.Contains(s, "juvenile") || strings.Contains(s, "children") {
			child = true
		}
		if strings.Contains(s, "young adult") || strings.Contains(s, "ya") {
			ya = true
		}
	}
	switch age {
	case AgeChildren:
		return child
	case AgeYA:
		return ya
	case AgeAdult:
		return !child && !ya
	}
	return true
}

// ApplyFilters keeps the docs that fit age, preserving order.
func ApplyFilters(docs []Doc, age Age) []Doc {
	out := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if FitsAge(d, age) {
			out = append(out, d)
		}
	}
	return out
}
