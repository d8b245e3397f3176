// Package registry holds the named extension resolvers served by the
// _extension GraphQL field.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"coffeebar.GO/core/registry"
)

// ResolverFunc resolves one extension. Args is the JSON-decoded argument
// object; the result is JSON-encoded into the response.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var (
	mu       sync.Mutex
	lockOnce sync.Once
)

func entries() map[string]ResolverFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL); ok && v != nil {
		return v.(map[string]ResolverFunc)
	}
	return make(map[string]ResolverFunc)
}

// Register adds an extension under a unique name. Call from init(); panics
// once the first request has been served or when name is taken.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked (register only during init before first request)")
	}
	m := entries()
	if _, ok := m[name]; ok {
		panic("graphql/registry: duplicate " + name)
	}
	m[name] = resolve
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, m)
}

// Unregister removes an extension. Tests only; it reopens the registry.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	m := entries()
	delete(m, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, m)
}

// Resolve runs the named extension. The first call locks the registry.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	lockOnce.Do(func() { registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL) })

	mu.Lock()
	resolve, ok := entries()[name]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown extension %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return resolve(ctx, args)
}

// Names lists the registered extensions alphabetically.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	m := entries()
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
