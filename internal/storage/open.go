package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendFile, BackendMemory, BackendRedis:
		return true
	default:
		return false
	}
}

// Open returns the repository for backend rooted at path. For redis, path
// is a redis:// URL.
func Open(backend Backend, path string) (Repository, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryRepository(), nil
	case BackendFile:
		return OpenFile(path)
	case BackendRedis:
		return OpenRedis(context.Background(), path)
	case BackendSQLite:
		if dir := filepath.Dir(strings.TrimSpace(path)); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create store dir: %w", err)
			}
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
