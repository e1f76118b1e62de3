package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vitrine-dev/vitrine/internal/config"
	"github.com/vitrine-dev/vitrine/pkg/cache"
	"github.com/vitrine-dev/vitrine/pkg/errors"
	"github.com/vitrine-dev/vitrine/pkg/store"
)

// cacheDir returns the file cache directory, honoring the config override.
func cacheDir(cfg config.Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "vitrine", "render"), nil
}

// openCache builds the render cache selected by the config.
func openCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendOff:
		return cache.NewNullCache(), nil
	case config.CacheBackendMemory:
		return cache.NewMemoryCache(), nil
	case config.CacheBackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "connect redis cache")
		}
		return rc, nil
	case config.CacheBackendFile, "":
		dir, err := cacheDir(cfg)
		if err != nil {
			return nil, err
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "open file cache")
		}
		return fc, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// openStore builds the bundle store selected by the config.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Store.Mongo.URI,
			Database:   cfg.Store.Mongo.Database,
			Collection: cfg.Store.Mongo.Collection,
		})
	case "memory", "":
		return store.NewMemoryStore(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend: %s", cfg.Store.Backend)
	}
}
