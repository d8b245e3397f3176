package jobs

import (
	"context"

	"go.uber.org/zap"

	"coffeebar.GO/app"
	"coffeebar.GO/config"
	"coffeebar.GO/cron"
)

func init() {
	cron.Register(config.CatalogRefreshJob, "@every 10m", RefreshCatalog)
}

// RefreshCatalog drops the cached coffee catalog and refetches it. A failed
// fetch leaves the previous collection in place.
func RefreshCatalog(ctx context.Context, deps *app.Deps, _ ...string) error {
	deps.Catalog.Invalidate()
	items, err := deps.Catalog.Refresh(ctx)
	if err != nil {
		return err
	}
	deps.Log.Info("catalog refresh job done", zap.Int("items", len(items)))
	return nil
}
