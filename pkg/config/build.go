package config

import (
	"context"
	"fmt"

	"github.com/ironplane/ironplane/pkg/boardstore"
	"github.com/ironplane/ironplane/pkg/modelcache"
)

// BuildCache realizes cfg.Cache into a live modelcache.Cache.
func (cfg Config) BuildCache() (modelcache.Cache, error) {
	switch cfg.Cache.Backend {
	case "", "none":
		return modelcache.NewNullCache(), nil
	case "file":
		return modelcache.NewFileCache(cfg.Cache.Dir)
	case "redis":
		return modelcache.NewRedisCache(context.Background(), modelcache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
	default:
		return nil, fmt.Errorf("config: unknown cache backend %q", cfg.Cache.Backend)
	}
}

// BuildStore realizes cfg.Store into a live boardstore.Store.
func (cfg Config) BuildStore(ctx context.Context) (boardstore.Store, error) {
	switch cfg.Store.Backend {
	case "", "memory":
		return boardstore.NewMemoryStore(), nil
	case "mongo":
		return boardstore.NewMongoStore(ctx, boardstore.MongoConfig{
			URI:        cfg.Store.MongoURI,
			Database:   cfg.Store.MongoDatabase,
			Collection: cfg.Store.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("config: unknown store backend %q", cfg.Store.Backend)
	}
}
