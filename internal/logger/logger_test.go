package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSet(t *testing.T) {
	defer Set(nil)

	if Get().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger should be silent")
	}

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, nil)))
	Get().Warn("block mismatch", "id", 4)
	if !strings.Contains(buf.String(), "block mismatch") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	Set(nil)
	if Get() == nil || Get().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nil should restore the silent logger")
	}
}
