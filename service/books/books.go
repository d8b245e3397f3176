// Package books searches the Open Library catalog and filters the results
// by reader age.
package books

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultBaseURL      = "https://openlibrary.org/search.json"
	DefaultLimit        = 24
	DefaultQuery        = "the"
	DefaultInitialQuery = "Dragon"

	// Fields requested from the search endpoint.
	Fields = "title,author_name,first_publish_year,cover_i,cover_edition_key,subject"

	NoCoverImage = "https://placehold.co/300x440?text=No+Cover"

	UnknownTitle  = "Unknown title"
	UnknownAuthor = "Unknown author"
	UnknownYear   = "—"

	MsgFetchFailed = "Error while fetching."
	MsgNoResults   = "No results."
)

// GenreAll disables the genre restriction.
const GenreAll = "all"

// Genres offered by the genre selector.
var Genres = []string{GenreAll, "fantasy", "science fiction", "mystery", "romance", "horror", "history"}

// Doc is one search hit as returned by Open Library.
type Doc struct {
	Title            string   `mapstructure:"title" json:"title,omitempty"`
	AuthorName       []string `mapstructure:"author_name" json:"author_name,omitempty"`
	FirstPublishYear int      `mapstructure:"first_publish_year" json:"first_publish_year,omitempty"`
	CoverI           int64    `mapstructure:"cover_i" json:"cover_i,omitempty"`
	CoverEditionKey  string   `mapstructure:"cover_edition_key" json:"cover_edition_key,omitempty"`
	Subject          []string `mapstructure:"subject" json:"subject,omitempty"`
}

// Book is the display card for a Doc.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Cover  string `json:"cover"`
}

// BuildQuery falls back to defaultQuery for blank input and appends a
// subject restriction unless genre is empty or "all".
func BuildQuery(input, genre, defaultQuery string) string {
	q := strings.TrimSpace(input)
	if q == "" {
		q = defaultQuery
	}
	if genre != "" && genre != GenreAll {
		q += ` subject:"` + genre + `"`
	}
	return q
}

// SearchURL builds the search request URL for q.
func SearchURL(baseURL, q string, limit int) string {
	return baseURL +
		"?q=" + strings.ReplaceAll(url.QueryEscape(q), "+", "%20") +
		"&fields=" + Fields +
		"&limit=" + strconv.Itoa(limit)
}

// CoverURL prefers the cover id, then the edition key, then a placeholder.
func CoverURL(d Doc) string {
	if d.CoverI != 0 {
		return "https://covers.openlibrary.org/b/id/" + strconv.FormatInt(d.CoverI, 10) + "-M.jpg"
	}
	if d.CoverEditionKey != "" {
		return "https://covers.openlibrary.org/b/olid/" + d.CoverEditionKey + "-M.jpg"
	}
	return NoCoverImage
}

// Card renders d with defaults for missing fields.
func Card(d Doc) Book {
	b := Book{
		Title:  UnknownTitle,
		Author: UnknownAuthor,
		Year:   UnknownYear,
		Cover:  CoverURL(d),
	}
	if d.Title != "" {
		b.Title = d.Title
	}
	if len(d.AuthorName) > 0 && d.AuthorName[0] != "" {
		b.Author = d.AuthorName[0]
	}
	if d.FirstPublishYear != 0 {
		b.Year = strconv.Itoa(d.FirstPublishYear)
	}
	return b
}

// Cards renders every doc.
func Cards(docs []Doc) []Book {
	out := make([]Book, 0, len(docs))
	for _, d := range docs {
		out = append(out, Card(d))
	}
	return out
}
