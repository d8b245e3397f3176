package coffee

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"coffeebar.GO/core/cache"
	"coffeebar.GO/core/fetch"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

type upstream struct {
	srv      *httptest.Server
	hotFail  atomic.Bool
	coldFail atomic.Bool
	hits     atomic.Int32
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	mux := http.NewServeMux()
	mux.HandleFunc("/hot", func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if u.hotFail.Load() {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Espresso"},{"id":2,"title":"Latte"},"junk"]`))
	})
	mux.HandleFunc("/cold", func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if u.coldFail.Load() {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Espresso Tonic"},{"id":70,"title":"Iced Coffee"}]`))
	})
	u.srv = httptest.NewServer(mux)
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) catalog(ttl time.Duration) *Catalog {
	client := fetch.NewClient(fetch.Options{Timeout: 5 * time.Second})
	f := NewFetcher(client, u.srv.URL+"/hot", u.srv.URL+"/cold", nil)
	return NewCatalog(f, cache.NewCache(), ttl, nil)
}

func TestCatalogRefresh(t *testing.T) {
	u := newUpstream(t)
	c := u.catalog(0)

	items, err := c.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := titles(items); len(got) != 4 || got[0] != "Espresso" || got[2] != "Espresso Tonic" {
		t.Fatalf("unexpected items %v", got)
	}
	if items[2].Kind != KindHot {
		t.Errorf("espresso from the cold listing should be hot")
	}
	if it, ok := c.Find("70"); !ok || it.Title != "Iced Coffee" {
		t.Errorf("Find(70) = %+v, %v", it, ok)
	}
	if _, ok := c.Find("404"); ok {
		t.Error("Find(404) should miss")
	}
}

func TestCatalogFailureKeepsCollection(t *testing.T) {
	tests := []struct {
		name string
		fail func(u *upstream)
	}{
		{"hot listing fails", func(u *upstream) { u.hotFail.Store(true) }},
		{"cold listing fails", func(u *upstream) { u.coldFail.Store(true) }},
		{"both fail", func(u *upstream) { u.hotFail.Store(true); u.coldFail.Store(true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newUpstream(t)
			c := u.catalog(0)

			before, err := c.Refresh(context.Background())
			if err != nil {
				t.Fatalf("Refresh: %v", err)
			}

			tt.fail(u)
			after, err := c.Refresh(context.Background())
			if err == nil {
				t.Fatal("expected an error when a listing fails")
			}
			if !errors.Is(err, fetch.ErrNetwork) {
				t.Errorf("expected network failure, got %v", err)
			}
			if len(after) != len(before) || len(c.Items()) != len(before) {
				t.Errorf("collection changed after failed fetch: %d -> %d", len(before), len(after))
			}
		})
	}
}

func TestCatalogLoadUsesCache(t *testing.T) {
	u := newUpstream(t)
	c := u.catalog(time.Minute)

	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := u.hits.Load(); got != 2 {
		t.Errorf("expected one fetch per listing, got %d requests", got)
	}

	c.Invalidate()
	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := u.hits.Load(); got != 4 {
		t.Errorf("expected a refetch after Invalidate, got %d requests", got)
	}
}

func TestRecords(t *testing.T) {
	if got := Records(map[string]interface{}{"id": 1.0}); len(got) != 0 {
		t.Errorf("object payload should yield no records, got %v", got)
	}
	if got := Records(nil); len(got) != 0 {
		t.Errorf("null payload should yield no records, got %v", got)
	}
	got := Records([]interface{}{1.0, map[string]interface{}{"id": 2.0}, nil})
	if len(got) != 1 {
		t.Errorf("expected one record, got %v", got)
	}
}
