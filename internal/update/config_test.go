package update

import (
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/tabdo/internal/storage"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.StoreBackend != storage.BackendSQLite || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ResolvedStorePath() != filepath.Join(".tabdo", "tabdo.db") {
		t.Fatalf("unexpected store path default: %q", cfg.ResolvedStorePath())
	}
	if cfg.LogFile != filepath.Join(".tabdo", "tabdo.log") || cfg.PreviewWidth != 40 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TABDO_STORE_BACKEND", "FILE")
	t.Setenv("TABDO_STORE_PATH", "state/custom.json")
	t.Setenv("TABDO_LOG_FILE", "")
	t.Setenv("TABDO_DEBUG", "yes")
	t.Setenv("TABDO_PREVIEW_WIDTH", "60")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.StoreBackend != storage.BackendFile {
		t.Fatalf("expected file backend, got %q", cfg.StoreBackend)
	}
	if cfg.ResolvedStorePath() != "state/custom.json" {
		t.Fatalf("unexpected store path override: %+v", cfg)
	}
	if cfg.LogFile != "" {
		t.Fatalf("empty TABDO_LOG_FILE should disable the log file: %+v", cfg)
	}
	if !cfg.Debug || cfg.PreviewWidth != 60 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresBadEnv(t *testing.T) {
	t.Setenv("TABDO_STORE_BACKEND", "etcd")
	t.Setenv("TABDO_DEBUG", "maybe")
	t.Setenv("TABDO_PREVIEW_WIDTH", "-3")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg != DefaultRuntimeConfig() {
		t.Fatalf("invalid env should leave defaults, got %+v", cfg)
	}
}

func TestDefaultStorePathPerBackend(t *testing.T) {
	if DefaultStorePath(storage.BackendFile) != filepath.Join(".tabdo", "tabdo.json") {
		t.Fatalf("unexpected file path: %q", DefaultStorePath(storage.BackendFile))
	}
	if DefaultStorePath(storage.BackendMemory) != "" {
		t.Fatal("memory backend needs no path")
	}
}
