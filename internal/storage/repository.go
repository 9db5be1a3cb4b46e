package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// ErrCorrupt marks a backing store whose contents could not be decoded.
var ErrCorrupt = errors.New("storage: corrupt store")

// Repository is a string-keyed store for small serialized values.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
