// Package persist stores the to-do collection and the active tab in a
// key-value repository, one JSON value per key.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sandeepkv93/tabdo/internal/model"
	"github.com/sandeepkv93/tabdo/internal/storage"
)

const (
	ToDosKey = "@toDos"
	TabKey   = "@tab"
)

// ErrCorrupt marks a stored value that could not be decoded. Load falls
// back to defaults for that value and still returns a usable Snapshot.
var ErrCorrupt = errors.New("persist: corrupt stored value")

type Snapshot struct {
	ToDos    model.Collection
	Category model.Category
}

func DefaultSnapshot() Snapshot {
	return Snapshot{ToDos: model.Collection{}, Category: model.CategoryWork}
}

// Adapter serializes writes. Versioned saves carry an increasing number per
// key; a save older than the last one written for its key is skipped.
type Adapter struct {
	mu      sync.Mutex
	repo    storage.Repository
	written map[string]uint64
}

func NewAdapter(repo storage.Repository) *Adapter {
	return &Adapter{repo: repo, written: make(map[string]uint64)}
}

func (a *Adapter) Save(ctx context.Context, s Snapshot) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.saveToDos(ctx, s.ToDos); err != nil {
		return err
	}
	return a.saveCategory(ctx, s.Category)
}

func (a *Adapter) SaveToDos(ctx context.Context, c model.Collection) error {
	return a.SaveToDosVersion(ctx, 0, c)
}

func (a *Adapter) SaveCategory(ctx context.Context, c model.Category) error {
	return a.SaveCategoryVersion(ctx, 0, c)
}

// SaveToDosVersion writes c unless a newer version was already written.
// Version 0 always writes.
func (a *Adapter) SaveToDosVersion(ctx context.Context, version uint64, c model.Collection) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stale(ToDosKey, version) {
		return nil
	}
	if err := a.saveToDos(ctx, c); err != nil {
		return err
	}
	a.markWritten(ToDosKey, version)
	return nil
}

func (a *Adapter) SaveCategoryVersion(ctx context.Context, version uint64, c model.Category) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stale(TabKey, version) {
		return nil
	}
	if err := a.saveCategory(ctx, c); err != nil {
		return err
	}
	a.markWritten(TabKey, version)
	return nil
}

func (a *Adapter) stale(key string, version uint64) bool {
	if version == 0 || version > a.written[key] {
		return false
	}
	log.WithFields(log.Fields{"key": key, "version": version, "written": a.written[key]}).Debug("skipping stale save")
	return true
}

func (a *Adapter) markWritten(key string, version uint64) {
	if version > a.written[key] {
		a.written[key] = version
	}
}

func (a *Adapter) saveToDos(ctx context.Context, c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	for key, todo := range c {
		if key == "" {
			return errors.New("save to-dos: empty key")
		}
		if err := todo.Validate(); err != nil {
			return fmt.Errorf("save to-dos: %s: %w", key, err)
		}
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode to-dos: %w", err)
	}
	if err := a.repo.Set(ctx, ToDosKey, string(raw)); err != nil {
		return fmt.Errorf("save to-dos: %w", err)
	}
	log.WithField("count", len(c)).Debug("to-dos saved")
	return nil
}

func (a *Adapter) saveCategory(ctx context.Context, c model.Category) error {
	if !c.IsValid() {
		return fmt.Errorf("save tab: %w: %q", model.ErrInvalidCategory, c)
	}
	raw, err := json.Marshal(c.Working())
	if err != nil {
		return fmt.Errorf("encode tab: %w", err)
	}
	if err := a.repo.Set(ctx, TabKey, string(raw)); err != nil {
		return fmt.Errorf("save tab: %w", err)
	}
	log.WithField("tab", c).Debug("tab saved")
	return nil
}

// Load restores both values. Missing keys keep the defaults. A corrupt value
// is removed from the store, replaced by its default and reported through an
// ErrCorrupt error next to the usable snapshot; storage failures are
// returned as-is.
func (a *Adapter) Load(ctx context.Context) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := DefaultSnapshot()
	var errs []error

	raw, err := a.repo.Get(ctx, ToDosKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case errors.Is(err, storage.ErrCorrupt):
		errs = append(errs, a.reset(ctx, ToDosKey, err))
	case err != nil:
		return DefaultSnapshot(), fmt.Errorf("load to-dos: %w", err)
	default:
		todos, decodeErr := decodeToDos(raw)
		if decodeErr != nil {
			errs = append(errs, a.reset(ctx, ToDosKey, decodeErr))
		} else {
			out.ToDos = todos
		}
	}

	raw, err = a.repo.Get(ctx, TabKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case errors.Is(err, storage.ErrCorrupt):
		errs = append(errs, a.reset(ctx, TabKey, err))
	case err != nil:
		return DefaultSnapshot(), fmt.Errorf("load tab: %w", err)
	default:
		category, decodeErr := decodeTab(raw)
		if decodeErr != nil {
			errs = append(errs, a.reset(ctx, TabKey, decodeErr))
		} else {
			out.Category = category
		}
	}

	return out, errors.Join(errs...)
}

// LastSaved reports when the collection was last written, for backends that
// track write times.
func (a *Adapter) LastSaved(ctx context.Context) (time.Time, bool) {
	tracker, ok := a.repo.(interface {
		UpdatedAt(ctx context.Context, key string) (time.Time, error)
	})
	if !ok {
		return time.Time{}, false
	}
	at, err := tracker.UpdatedAt(ctx, ToDosKey)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// reset drops an unreadable value so the default takes its place, and
// returns cause as an ErrCorrupt error.
func (a *Adapter) reset(ctx context.Context, key string, cause error) error {
	if !errors.Is(cause, ErrCorrupt) {
		cause = fmt.Errorf("%w: %s: %v", ErrCorrupt, key, cause)
	}
	log.WithField("key", key).WithError(cause).Warn("resetting corrupt value")
	if err := a.repo.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.WithField("key", key).WithError(err).Warn("could not remove corrupt value")
	}
	return cause
}

func decodeTab(raw string) (model.Category, error) {
	var working *bool
	if err := json.Unmarshal([]byte(raw), &working); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCorrupt, TabKey, err)
	}
	if working == nil {
		return "", fmt.Errorf("%w: %s: null", ErrCorrupt, TabKey)
	}
	return model.CategoryFromWorking(*working), nil
}

// decodeToDos accepts the stored object and drops individual records that do
// not decode or validate, keeping the rest.
func decodeToDos(raw string) (model.Collection, error) {
	var items map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, ToDosKey, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: %s: null", ErrCorrupt, ToDosKey)
	}
	out := make(model.Collection, len(items))
	for key, item := range items {
		var todo model.ToDo
		if err := json.Unmarshal(item, &todo); err != nil {
			log.WithField("key", key).WithError(err).Warn("dropping undecodable to-do")
			continue
		}
		if err := todo.Validate(); err != nil {
			log.WithField("key", key).WithError(err).Warn("dropping invalid to-do")
			continue
		}
		if key == "" {
			log.Warn("dropping to-do with empty key")
			continue
		}
		out[key] = todo
	}
	return out, nil
}
