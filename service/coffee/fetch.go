package coffee

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source fetches and decodes one JSON document. *fetch.Client satisfies it.
type Source interface {
	GetJSON(ctx context.Context, rawURL string, v interface{}) error
}

// Fetcher loads both listings and normalizes them.
type Fetcher struct {
	src     Source
	hotURL  string
	coldURL string
	log     *zap.Logger
}

func NewFetcher(src Source, hotURL, coldURL string, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{src: src, hotURL: hotURL, coldURL: coldURL, log: log}
}

// Fetch requests both listings concurrently. If either request fails the
// whole fetch fails and no partial collection is returned.
func (f *Fetcher) Fetch(ctx context.Context) ([]Item, error) {
	var hot, cold []RawRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := f.listing(gctx, f.hotURL)
		hot = recs
		return err
	})
	g.Go(func() error {
		recs, err := f.listing(gctx, f.coldURL)
		cold = recs
		return err
	})
	if err := g.Wait(); err != nil {
		f.log.Warn("catalog fetch failed", zap.Error(err))
		return nil, err
	}

	items := Normalize(hot, cold)
	f.log.Debug("catalog fetched",
		zap.Int("hot", len(hot)),
		zap.Int("cold", len(cold)))
	return items, nil
}

func (f *Fetcher) listing(ctx context.Context, rawURL string) ([]RawRecord, error) {
	var payload interface{}
	if err := f.src.GetJSON(ctx, rawURL, &payload); err != nil {
		return nil, err
	}
	return Records(payload), nil
}

// Records extracts the objects of a listing payload. A payload that is not
// an array yields an empty listing; non-object elements are skipped.
func Records(payload interface{}) []RawRecord {
	list, ok := payload.([]interface{})
	if !ok {
		return []RawRecord{}
	}
	out := make([]RawRecord, 0, len(list))
	for _, el := range list {
		if rec, ok := el.(map[string]interface{}); ok {
			out = append(out, rec)
		}
	}
	return out
}
