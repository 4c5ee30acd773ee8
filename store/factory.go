package store

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Options selects and configures a Backend.
type Options struct {
	Kind          string // "memory", "file" or "redis"
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewBackend constructs a Backend by kind. For a file backend, corruption of
// the whole document is passed to onCorrupt.
func NewBackend(opts Options, logger *slog.Logger, onCorrupt func(error)) (Backend, error) {
	switch opts.Kind {
	case "memory", "mem":
		return NewMemoryBackend(), nil
	case "file":
		if opts.Path == "" {
			return nil, errors.New("file path required for file store")
		}
		return NewFileBackend(opts.Path, logger, onCorrupt)
	case "redis":
		if opts.RedisAddr == "" {
			return nil, errors.New("redis address required for redis store")
		}
		return NewRedisBackend(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	default:
		return nil, errors.Errorf("unknown store kind: %s", opts.Kind)
	}
}
