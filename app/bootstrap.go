package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"coffeebar.GO/config"
	storageRepo "coffeebar.GO/model/repository/storage"
	"coffeebar.GO/service/cart"
)

// Bootstrap loads configuration, builds the logger, opens cart storage and
// returns the wired services. Call the returned function on shutdown.
func Bootstrap(ctx context.Context, debug bool) (*Deps, func(), error) {
	config.LoadEnv()
	cfg := config.LoadAppConfig()

	log, err := config.NewLogger(cfg.Debug || debug)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	store, closeStore, err := OpenStore(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		closeStore()
		_ = log.Sync()
	}
	return New(cfg, log, store), cleanup, nil
}

// OpenStore returns the cart store selected by STORAGE_DRIVER. Redis is used
// only when it is configured and answers a ping; otherwise the database is
// used.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (cart.Store, func(), error) {
	if cfg.StorageDriver == "redis" {
		config.InitRedis()
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		ok := config.PingRedis(pingCtx)
		cancel()
		if ok {
			log.Info("cart storage: redis")
			rdb := config.RedisClient
			return storageRepo.NewRedisRepository(rdb, cfg.AppName+":", 0), func() { _ = rdb.Close() }, nil
		}
		log.Warn("redis configured but not reachable, falling back to database")
	}

	db, err := config.NewDB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	repo, err := storageRepo.NewStorageRepository(db)
	if err != nil {
		return nil, nil, fmt.Errorf("migrate storage: %w", err)
	}
	log.Info("cart storage: database")
	return repo, func() { _ = sqlDB.Close() }, nil
}
