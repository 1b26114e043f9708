package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the ironplane service's top-level configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP API listener (internal/api).
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the modelcache backend.
type CacheConfig struct {
	// Backend is one of "none", "file", or "redis".
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects and configures the boardstore backend.
type StoreConfig struct {
	// Backend is one of "memory" or "mongo".
	Backend         string `toml:"backend"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Default returns the configuration used when no file is present: an
// in-memory board store, file-based model cache under the OS default
// cache directory, and the API bound to ":8080" (port 8080 on every
// interface).
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: "file", Dir: defaultCacheDir()},
		Store:  StoreConfig{Backend: "memory"},
	}
}

// Load reads and parses the TOML configuration file at path, overlaying it
// onto Default(). A missing file is not an error — Default() is returned
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func defaultCacheDir() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return cacheHome + "/ironplane"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ironplane-cache"
	}
	return home + "/.cache/ironplane"
}
