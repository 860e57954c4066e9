package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "debug level", level: "debug", wantDebug: true, wantInfo: true},
		{name: "info level", level: "info", wantDebug: false, wantInfo: true},
		{name: "warn level", level: "warn", wantDebug: false, wantInfo: false},
		{name: "error level", level: "error", wantDebug: false, wantInfo: false},
		{name: "uppercase level", level: "WARN", wantDebug: false, wantInfo: false},
		{name: "invalid level falls back to info", level: "verbose", wantDebug: false, wantInfo: true},
		{name: "empty level falls back to info", level: "", wantDebug: false, wantInfo: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := Setup(Config{Level: tc.level})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tc.wantDebug, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.wantInfo, log.Enabled(ctx, slog.LevelInfo))
			assert.True(t, log.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestSetup_InstallsDefault(t *testing.T) {
	log, err := Setup(Config{Level: "info"})
	require.NoError(t, err)
	assert.Same(t, log, slog.Default())
}

func TestFromContext(t *testing.T) {
	attached := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("returns attached logger", func(t *testing.T) {
		ctx := WithLogger(context.Background(), attached)
		assert.Same(t, attached, FromContext(ctx))
	})

	t.Run("falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
}

func TestFromContextOrDefault(t *testing.T) {
	attached := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("prefers attached logger", func(t *testing.T) {
		ctx := WithLogger(context.Background(), attached)
		assert.Same(t, attached, FromContextOrDefault(ctx, fallback))
	})

	t.Run("uses fallback when nothing attached", func(t *testing.T) {
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("nil fallback uses process default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}
