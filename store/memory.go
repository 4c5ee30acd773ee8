// Package store provides durable storage for the storefront collections.
package store

import (
	"context"
	"sync"
)

// Backend is durable per-device key-value storage. Values are opaque strings;
// a missing key reports ok=false without error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryBackend is a thread-safe in-memory Backend
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryBackend constructs a new MemoryBackend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values: make(map[string]string),
	}
}

// compile-time assertion that MemoryBackend implements Backend
var _ Backend = (*MemoryBackend)(nil)

func (b *MemoryBackend) Get(ctx context.Context, key string) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	default:
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.values[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(ctx context.Context, key, value string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = value
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.values, key)
	return nil
}
