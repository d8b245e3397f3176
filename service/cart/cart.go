// Package cart keeps the coffee cart and mirrors it to a key-value store
// after every change.
package cart

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"sync"

	"coffeebar.GO/service/coffee"
	"go.uber.org/zap"
)

// DefaultKey is the storage key of the cart.
const DefaultKey = "coffeeCart"

// Entry is one cart line. Price is fixed when the item is first added.
type Entry struct {
	Item  coffee.Item `json:"item"`
	Qty   int         `json:"qty"`
	Price int         `json:"price"`
}

// Sum is the line total.
func (e Entry) Sum() int { return e.Price * e.Qty }

// Store persists one serialized value per key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// KeyLister is implemented by stores that can enumerate their keys.
type KeyLister interface {
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Cart is safe for concurrent use. The in-memory entries are authoritative;
// storage failures are logged and otherwise ignored.
type Cart struct {
	key   string
	store Store
	log   *zap.Logger

	mu      sync.Mutex
	entries map[string]Entry
}

// Load reads the cart stored under key. Missing or unreadable data yields an
// empty cart.
func Load(ctx context.Context, store Store, key string, log *zap.Logger) *Cart {
	c := New(store, key, log)
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cart load failed", zap.String("key", key), zap.Error(err))
		return c
	}
	if ok {
		c.entries = Unmarshal([]byte(raw))
	}
	return c
}

// New returns an empty cart bound to key.
func New(store Store, key string, log *zap.Logger) *Cart {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cart{key: key, store: store, log: log, entries: map[string]Entry{}}
}

// Key is the storage key the cart is written under.
func (c *Cart) Key() string { return c.key }

// Add puts one more of item in the cart.
func (c *Cart) Add(ctx context.Context, item coffee.Item) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := item.Key()
	e, ok := c.entries[key]
	if !ok {
		e = Entry{Item: item, Price: item.Price}
	}
	e.Qty++
	c.entries[key] = e
	c.persist(ctx)
	return e
}

// AdjustQty changes the quantity of id by delta and removes the entry once
// it drops to zero. Unknown ids are ignored.
func (c *Cart) AdjustQty(ctx context.Context, id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return
	}
	e.Qty += delta
	if e.Qty <= 0 {
		delete(c.entries, id)
	} else {
		c.entries[id] = e
	}
	c.persist(ctx)
}

// Remove drops id from the cart.
func (c *Cart) Remove(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; !ok {
		return
	}
	delete(c.entries, id)
	c.persist(ctx)
}

// Checkout empties the cart. An empty cart is left alone and only produces
// an advisory.
func (c *Cart) Checkout(ctx context.Context) Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		return EmptyCart
	}
	c.entries = map[string]Entry{}
	c.persist(ctx)
	return OrderPlaced
}

// Clear drops every line and deletes the stored value instead of writing an
// empty cart. It returns the number of lines removed.
func (c *Cart) Clear(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = map[string]Entry{}
	if err := c.store.Delete(ctx, c.key); err != nil {
		c.log.Warn("cart delete failed", zap.String("key", c.key), zap.Error(err))
	}
	return n
}

// Get returns the entry for id.
func (c *Cart) Get(id string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	return e, ok
}

// Entries returns the cart lines with integer keys first in ascending order,
// followed by the remaining keys sorted.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.entries[k])
	}
	return out
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, e := range c.entries {
		total += e.Sum()
	}
	return total
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Count is the number of items across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		n += e.Qty
	}
	return n
}

// persist writes the whole cart. Callers hold c.mu.
func (c *Cart) persist(ctx context.Context) {
	data, err := Marshal(c.entries)
	if err != nil {
		c.log.Warn("cart encode failed", zap.String("key", c.key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, c.key, string(data)); err != nil {
		c.log.Warn("cart save failed", zap.String("key", c.key), zap.Error(err))
	}
}

// Marshal encodes entries as {"<id>": {"item": ..., "qty": n, "price": p}}.
func Marshal(entries map[string]Entry) ([]byte, error) {
	if entries == nil {
		entries = map[string]Entry{}
	}
	return json.Marshal(entries)
}

// Unmarshal decodes a stored cart. Corrupt input gives an empty cart and
// lines without a positive quantity are dropped.
func Unmarshal(data []byte) map[string]Entry {
	var decoded map[string]Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		return map[string]Entry{}
	}
	out := make(map[string]Entry, len(decoded))
	for k, e := range decoded {
		if e.Qty <= 0 {
			continue
		}
		out[k] = e
	}
	return out
}

func keyLess(a, b string) bool {
	ai, aok := arrayIndex(a)
	bi, bok := arrayIndex(b)
	switch {
	case aok && bok:
		return ai < bi
	case aok:
		return true
	case bok:
		return false
	}
	return a < b
}

// arrayIndex reports whether k is a canonical non-negative integer key.
func arrayIndex(k string) (uint64, bool) {
	n, err := strconv.ParseUint(k, 10, 32)
	if err != nil || n == math.MaxUint32 || strconv.FormatUint(n, 10) != k {
		return 0, false
	}
	return n, true
}
