package update

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sandeepkv93/tabdo/internal/storage"
)

const DefaultDataDir = ".tabdo"

type RuntimeConfig struct {
	StoreBackend storage.Backend
	// StorePath empty means DefaultStorePath(StoreBackend).
	StorePath    string
	LogFile      string
	Debug        bool
	PreviewWidth int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StoreBackend: storage.BackendSQLite,
		LogFile:      filepath.Join(DefaultDataDir, "tabdo.log"),
		Debug:        false,
		PreviewWidth: 40,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("TABDO_STORE_BACKEND"))); v != "" {
		if b := storage.Backend(v); b.IsValid() {
			cfg.StoreBackend = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("TABDO_STORE_PATH")); v != "" {
		cfg.StorePath = v
	}
	if v, ok := os.LookupEnv("TABDO_LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v, ok := getEnvBool("TABDO_DEBUG"); ok {
		cfg.Debug = v
	}
	if v, ok := getEnvInt("TABDO_PREVIEW_WIDTH"); ok && v > 0 {
		cfg.PreviewWidth = v
	}
	return cfg
}

func (c RuntimeConfig) ResolvedStorePath() string {
	if strings.TrimSpace(c.StorePath) != "" {
		return c.StorePath
	}
	return DefaultStorePath(c.StoreBackend)
}

func DefaultStorePath(b storage.Backend) string {
	switch b {
	case storage.BackendFile:
		return filepath.Join(DefaultDataDir, "tabdo.json")
	case storage.BackendMemory:
		return ""
	case storage.BackendRedis:
		return "redis://localhost:6379/0"
	default:
		return filepath.Join(DefaultDataDir, "tabdo.db")
	}
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
