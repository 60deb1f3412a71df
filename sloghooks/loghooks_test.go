package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRedactsKeysByDefault(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{})

	h.TransformFailed("secret-key", errors.New("bad int"))
	out := buf.String()
	if strings.Contains(out, "secret-key") {
		t.Fatalf("raw key leaked: %q", out)
	}
	if !strings.Contains(out, "kvcache.transform_failed") || !strings.Contains(out, "bad int") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCustomRedactAndMissSampling(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{
		MissEvery: 3,
		Redact:    func(k string) string { return "r:" + k },
	})

	for i := 0; i < 9; i++ {
		h.Miss("k")
	}
	if n := strings.Count(buf.String(), "kvcache.miss"); n != 3 {
		t.Fatalf("sampled misses = %d, want 3", n)
	}
	if !strings.Contains(buf.String(), "key=r:k") {
		t.Fatalf("custom redactor not used: %q", buf.String())
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	h := New(nil, Options{})
	h.Flushed()
	h.Miss("k")
	h.TransformFailed("k", errors.New("x"))
}
