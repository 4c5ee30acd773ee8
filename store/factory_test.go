package store

import (
	"path/filepath"
	"testing"
)

func TestNewBackendFactory(t *testing.T) {
	b, err := NewBackend(Options{Kind: "memory"}, nil, nil)
	if err != nil || b == nil {
		t.Fatalf("memory backend: %v", err)
	}

	path := filepath.Join(t.TempDir(), "factory.json")
	b, err = NewBackend(Options{Kind: "file", Path: path}, nil, nil)
	if err != nil || b == nil {
		t.Fatalf("file backend: %v", err)
	}
	if fb, ok := b.(*FileBackend); !ok || fb.Path() != path {
		t.Fatalf("expected *FileBackend at %s, got %T", path, b)
	}

	cases := []Options{
		{Kind: "file"},
		{Kind: "redis"},
		{Kind: "floppy"},
	}
	for _, opts := range cases {
		if _, err := NewBackend(opts, nil, nil); err == nil {
			t.Errorf("expected error for %+v", opts)
		}
	}
}
