// Package app assembles the long-lived services shared by the HTTP server,
// the GraphQL server, the cron scheduler and the CLI.
package app

import (
	"context"

	"go.uber.org/zap"

	"coffeebar.GO/config"
	"coffeebar.GO/core/cache"
	"coffeebar.GO/core/fetch"
	"coffeebar.GO/service/books"
	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

// Deps holds the process-wide services.
type Deps struct {
	Config  *config.Config
	Log     *zap.Logger
	Cache   *cache.Cache
	Fetch   *fetch.Client
	Catalog *coffee.Catalog
	Books   *books.Client
	Store   cart.Store
}

// New wires the services on top of cfg. A nil log discards output.
func New(cfg *config.Config, log *zap.Logger, store cart.Store) *Deps {
	if log == nil {
		log = zap.NewNop()
	}
	c := cache.GetInstance()
	client := fetch.NewClient(fetch.Options{
		Timeout: cfg.FetchTimeout,
		RPS:     cfg.FetchRPS,
		Logger:  log.Named("fetch"),
	})
	return NewWithClient(cfg, log, store, client, c)
}

// NewWithClient is New with an explicit upstream client and cache.
func NewWithClient(cfg *config.Config, log *zap.Logger, store cart.Store, client *fetch.Client, c *cache.Cache) *Deps {
	if log == nil {
		log = zap.NewNop()
	}
	fetcher := coffee.NewFetcher(client, cfg.HotURL, cfg.ColdURL, log.Named("coffee"))
	return &Deps{
		Config:  cfg,
		Log:     log,
		Cache:   c,
		Fetch:   client,
		Catalog: coffee.NewCatalog(fetcher, c, cfg.CatalogTTL, log.Named("catalog")),
		Books: books.NewClient(client, books.Options{
			BaseURL:      cfg.BooksURL,
			Limit:        cfg.BooksLimit,
			DefaultQuery: cfg.BooksDefaultQuery,
			Cache:        c,
			TTL:          cfg.CatalogTTL,
			Logger:       log.Named("books"),
		}),
		Store: store,
	}
}

// Shop loads the cart stored under cartKey and returns a controller for it.
// The catalog is not fetched; call Load on the controller.
func (d *Deps) Shop(ctx context.Context, cartKey string, state shop.State) *shop.Controller {
	c := cart.Load(ctx, d.Store, cartKey, d.Log.Named("cart"))
	return shop.NewController(d.Catalog, c, state, d.Log.Named("shop"))
}
