package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// FileRepository keeps every key in one JSON object on disk. Each Set
// rewrites the whole file through a temp file and rename.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func OpenFile(path string) (*FileRepository, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("storage: empty file path")
	}
	return &FileRepository{path: trimmed}, nil
}

func (r *FileRepository) Close() error { return nil }

func (r *FileRepository) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	values, err := r.read()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (r *FileRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	values, _, err := r.readForWrite()
	if err != nil {
		return err
	}
	values[key] = value
	return r.write(values)
}

func (r *FileRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	values, reset, err := r.readForWrite()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		if reset {
			return r.write(values)
		}
		return ErrNotFound
	}
	delete(values, key)
	return r.write(values)
}

func (r *FileRepository) read() (map[string]string, error) {
	out := make(map[string]string)
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorrupt, r.path, err)
	}
	return out, nil
}

// readForWrite is read for mutations. An undecodable file is replaced by an
// empty store, reported through reset.
func (r *FileRepository) readForWrite() (values map[string]string, reset bool, err error) {
	values, err = r.read()
	if errors.Is(err, ErrCorrupt) {
		log.WithField("path", r.path).WithError(err).Warn("store file unreadable, starting empty")
		return make(map[string]string), true, nil
	}
	return values, false, err
}

func (r *FileRepository) write(values map[string]string) error {
	dir := filepath.Dir(r.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
