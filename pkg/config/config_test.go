package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironplane/ironplane/pkg/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ironplane.toml")
	contents := `
[server]
addr = ":9090"

[store]
backend = "mongo"
mongo_uri = "mongodb://localhost:27017"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Store.Backend != "mongo" {
		t.Fatalf("Store.Backend = %q, want mongo", cfg.Store.Backend)
	}
	if cfg.Store.MongoURI != "mongodb://localhost:27017" {
		t.Fatalf("Store.MongoURI = %q", cfg.Store.MongoURI)
	}
	if cfg.Cache.Backend != "file" {
		t.Fatalf("Cache.Backend = %q, want file (from defaults)", cfg.Cache.Backend)
	}
}

func TestBuildCacheUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = "bogus"
	if _, err := cfg.BuildCache(); err == nil {
		t.Fatalf("BuildCache with unknown backend should error")
	}
}
