package util

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewSessionID(t *testing.T) {
	id := NewSessionID()
	if !strings.HasPrefix(id, SessionIDPrefix) {
		t.Fatalf("missing prefix: %s", id)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(id, SessionIDPrefix)); err != nil {
		t.Fatalf("not a uuid: %s", id)
	}
	if NewSessionID() == id {
		t.Fatal("ids should be unique")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", "key", "marketly-cart")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "key=marketly-cart") {
		t.Fatalf("unexpected log output: %s", out)
	}
}
