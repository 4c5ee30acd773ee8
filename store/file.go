package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"marketly/domain"

	"github.com/pkg/errors"
)

// FileBackend keeps every key of one device in a single JSON document.
type FileBackend struct {
	mu     sync.RWMutex
	values map[string]string
	path   string
	logger *slog.Logger
}

// compile-time assertion
var _ Backend = (*FileBackend)(nil)

// NewFileBackend constructs a FileBackend at the given path. If the file exists
// it is loaded; an unreadable document starts the device empty and is reported
// through onCorrupt.
func NewFileBackend(path string, logger *slog.Logger, onCorrupt func(error)) (*FileBackend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := &FileBackend{
		values: make(map[string]string),
		path:   path,
		logger: logger,
	}
	if err := b.loadFromFile(onCorrupt); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *FileBackend) loadFromFile(onCorrupt func(error)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no file yet; that's fine
			return nil
		}
		return errors.Wrapf(err, "read store file %s", b.path)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &b.values); err != nil {
		b.values = make(map[string]string)
		corrupt := domain.NewStorageCorruptError("*", err)
		b.logger.Warn("store file unreadable, starting empty", "path", b.path, "error", err)
		if onCorrupt != nil {
			onCorrupt(corrupt)
		}
	}
	return nil
}

func (b *FileBackend) saveToFile() error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create store dir")
	}
	// encoding/json sorts map keys, so the file is deterministic
	raw, err := json.MarshalIndent(b.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode store file")
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	return errors.Wrap(os.Rename(tmp, b.path), "replace store file")
}

func (b *FileBackend) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *FileBackend) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, had := b.values[key]
	b.values[key] = value
	if err := b.saveToFile(); err != nil {
		if had {
			b.values[key] = prev
		} else {
			delete(b.values, key)
		}
		return err
	}
	return nil
}

func (b *FileBackend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, had := b.values[key]
	if !had {
		return nil
	}
	delete(b.values, key)
	if err := b.saveToFile(); err != nil {
		b.values[key] = prev
		return err
	}
	return nil
}

// Path returns the document location.
func (b *FileBackend) Path() string {
	return b.path
}
