package books

import (
	"context"
	"time"

	"coffeebar.GO/core/cache"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// CacheTag groups cached search results.
const CacheTag = "books"

// Source fetches and decodes one JSON document. *fetch.Client satisfies it.
type Source interface {
	GetJSON(ctx context.Context, rawURL string, v interface{}) error
}

type Options struct {
	BaseURL      string
	Limit        int
	DefaultQuery string
	Cache        *cache.Cache
	// TTL of cached results; 0 disables caching.
	TTL    time.Duration
	Logger *zap.Logger
}

// Client runs catalog searches.
type Client struct {
	src          Source
	baseURL      string
	limit        int
	defaultQuery string
	cache        *cache.Cache
	ttl          time.Duration
	log          *zap.Logger
}

func NewClient(src Source, opts Options) *Client {
	c := &Client{
		src:          src,
		baseURL:      opts.BaseURL,
		limit:        opts.Limit,
		defaultQuery: opts.DefaultQuery,
		cache:        opts.Cache,
		ttl:          opts.TTL,
		log:          opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.limit <= 0 {
		c.limit = DefaultLimit
	}
	if c.defaultQuery == "" {
		c.defaultQuery = DefaultQuery
	}
	if c.cache == nil {
		c.cache = cache.NewCache()
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Search returns the unfiltered docs for input and genre. Results are cached
// per built query.
func (c *Client) Search(ctx context.Context, input, genre string) ([]Doc, error) {
	q := BuildQuery(input, genre, c.defaultQuery)
	if v, ok := c.cache.GetN("books", q); ok {
		if docs, ok := v.([]Doc); ok {
			return docs, nil
		}
	}

	rawURL := SearchURL(c.baseURL, q, c.limit)
	var payload interface{}
	if err := c.src.GetJSON(ctx, rawURL, &payload); err != nil {
		c.log.Warn("book search failed", zap.String("query", q), zap.Error(err))
		return nil, err
	}

	docs := c.decode(payload)
	if c.ttl > 0 {
		c.cache.SetN([]interface{}{"books", q}, docs, c.ttl, []string{CacheTag})
	}
	c.log.Debug("book search", zap.String("query", q), zap.Int("docs", len(docs)))
	return docs, nil
}

// decode reads the "docs" array; anything else yields no docs.
func (c *Client) decode(payload interface{}) []Doc {
	obj, ok := payload.(map[string]interface{})
	if !ok {
		return []Doc{}
	}
	list, ok := obj["docs"].([]interface{})
	if !ok {
		return []Doc{}
	}
	docs := make([]Doc, 0, len(list))
	for _, el := range list {
		raw, ok := el.(map[string]interface{})
		if !ok {
			continue
		}
		d, err := DecodeDoc(raw)
		if err != nil {
			c.log.Debug("book doc partially decoded", zap.Error(err))
		}
		docs = append(docs, d)
	}
	return docs
}

// DecodeDoc converts one raw hit. Numbers and strings are converted loosely;
// on error the fields that did decode are kept.
func DecodeDoc(raw map[string]interface{}) (Doc, error) {
	var d Doc
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &d,
	})
	if err != nil {
		return d, err
	}
	err = dec.Decode(raw)
	return d, err
}
