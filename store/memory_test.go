package store

import (
	"context"
	"strconv"
	"sync"
	"testing"
)

func TestMemoryBackend_GetSetDelete(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	if _, ok, err := b.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := b.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := b.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	v, ok, err := b.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("unexpected get: %q %v %v", v, ok, err)
	}
	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting an absent key should be a no-op: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Fatal("key should be gone")
	}
}

func TestMemoryBackend_CanceledContext(t *testing.T) {
	b := NewMemoryBackend()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := b.Set(ctx, "k", "v"); err == nil {
		t.Fatal("expected context error on set")
	}
	if _, _, err := b.Get(ctx, "k"); err == nil {
		t.Fatal("expected context error on get")
	}
}

func TestMemoryBackend_ConcurrentWrites(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = b.Set(ctx, "k"+strconv.Itoa(i), strconv.Itoa(i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		v, ok, _ := b.Get(ctx, "k"+strconv.Itoa(i))
		if !ok || v != strconv.Itoa(i) {
			t.Fatalf("missing or wrong value for k%d: %q", i, v)
		}
	}
}
