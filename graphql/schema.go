package graphql

import (
	"strings"
	"sync"

	_ "embed"

	gql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphqls
var schemaBase string

var (
	schemaExtensions []string
	schemaMu         sync.Mutex
)

// RegisterSchemaExtension appends schema to the base schema. Call from init() in custom packages.
func RegisterSchemaExtension(schema string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, strings.TrimSpace(schema))
}

// Schema returns base schema + registered extensions.
func Schema() string {
	schemaMu.Lock()
	ext := schemaExtensions
	schemaMu.Unlock()
	if len(ext) == 0 {
		return schemaBase
	}
	return schemaBase + "\n\n" + strings.Join(ext, "\n\n")
}

// --- Schema arg types (used by resolvers for graphql-go method matching) ---

type CoffeesArgs struct {
	Kind  *string
	Query *string
	Sort  *string
}

type CoffeeArgs struct {
	ID gql.ID
}

type BooksArgs struct {
	Query *string
	Genre *string
	Age   *string
}

// Deref returns *s, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type ItemArgs struct {
	ID gql.ID
}

type AdjustQtyArgs struct {
	ID    gql.ID
	Delta int32
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}
