package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		ctx := WithLogger(context.Background(), logger)
		FromContext(ctx).Info("hello")

		if !strings.Contains(buf.String(), "msg=hello") {
			t.Errorf("expected message in stored logger output, got %q", buf.String())
		}
	})

	t.Run("falls back to default", func(t *testing.T) {
		if FromContext(context.Background()) != slog.Default() {
			t.Error("expected slog.Default()")
		}
	})
}
