package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"marketly/domain"

	"github.com/pkg/errors"
)

// Persister owns one Backend and the collections stored in it. It records
// every StorageCorrupt recovery so callers can inspect them.
type Persister struct {
	backend Backend
	logger  *slog.Logger

	mu          sync.Mutex
	corruptions []error
}

// NewPersister wraps an existing backend.
func NewPersister(b Backend, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{backend: b, logger: logger}
}

// Open builds the backend described by opts and wraps it.
func Open(opts Options, logger *slog.Logger) (*Persister, error) {
	p := NewPersister(nil, logger)
	b, err := NewBackend(opts, p.logger, p.recordCorruption)
	if err != nil {
		return nil, err
	}
	p.backend = b
	return p, nil
}

// Backend returns the underlying storage.
func (p *Persister) Backend() Backend {
	return p.backend
}

// Close releases the backend if it holds resources.
func (p *Persister) Close() error {
	if c, ok := p.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Corruptions returns the StorageCorrupt recoveries seen so far.
func (p *Persister) Corruptions() []error {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]error, len(p.corruptions))
	copy(out, p.corruptions)
	return out
}

func (p *Persister) recordCorruption(err error) {
	p.mu.Lock()
	p.corruptions = append(p.corruptions, err)
	p.mu.Unlock()
}

// envelope is the on-disk shape of every collection.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Collection is a typed, versioned view of one key.
type Collection[T any] struct {
	p        *Persister
	key      string
	version  int
	def      func() T
	validate func(T) error
}

// NewCollection binds key to a schema version, a default constructor and an
// optional validator run on every load.
func NewCollection[T any](p *Persister, key string, version int, def func() T, validate func(T) error) *Collection[T] {
	return &Collection[T]{p: p, key: key, version: version, def: def, validate: validate}
}

// Key returns the storage key.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the stored value, or the default when the key is missing,
// unreadable or fails validation. It never returns an error.
func (c *Collection[T]) Load(ctx context.Context) T {
	raw, ok, err := c.p.backend.Get(ctx, c.key)
	if err != nil {
		c.p.logger.Error("storage read failed, using default", "key", c.key, "error", err)
		return c.def()
	}
	if !ok {
		return c.def()
	}
	v, err := c.decode(raw)
	if err != nil {
		corrupt := domain.NewStorageCorruptError(c.key, err)
		c.p.logger.Warn("storage corrupt, using default", "key", c.key, "error", err)
		c.p.recordCorruption(corrupt)
		return c.def()
	}
	return v
}

func (c *Collection[T]) decode(raw string) (T, error) {
	var zero T
	var env envelope
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return zero, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return zero, errors.New("trailing data after envelope")
	}
	if env.Version != c.version {
		return zero, errors.Errorf("schema version %d, want %d", env.Version, c.version)
	}
	if len(env.Data) == 0 {
		return zero, errors.New("missing data")
	}
	var v T
	dec = json.NewDecoder(bytes.NewReader(env.Data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return zero, err
	}
	if c.validate != nil {
		if err := c.validate(v); err != nil {
			return zero, err
		}
	}
	return v, nil
}

// Save writes the whole value under the collection key.
func (c *Collection[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", c.key)
	}
	raw, err := json.Marshal(envelope{Version: c.version, Data: data})
	if err != nil {
		return errors.Wrapf(err, "encode %s", c.key)
	}
	if err := c.p.backend.Set(ctx, c.key, string(raw)); err != nil {
		c.p.logger.Error("storage write failed", "key", c.key, "error", err)
		return err
	}
	return nil
}

// Clear removes the key; the next Load returns the default.
func (c *Collection[T]) Clear(ctx context.Context) error {
	if err := c.p.backend.Delete(ctx, c.key); err != nil {
		c.p.logger.Error("storage delete failed", "key", c.key, "error", err)
		return err
	}
	return nil
}
