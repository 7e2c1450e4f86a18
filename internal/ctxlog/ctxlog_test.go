package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)

	require.Same(t, logger, FromContext(ctx))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	var got *slog.Logger
	require.NotPanics(t, func() {
		got = FromContext(context.Background())
	})
	require.Same(t, slog.Default(), got)
}

func TestWith(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	buf := &bytes.Buffer{}
	base := WithLogger(context.Background(), slog.New(slog.NewTextHandler(buf, nil)).With("run_id", "r1"))

	// --- Act ---
	ctx := With(base, "plant", "royal-fern")
	FromContext(ctx).Info("hello")
	FromContext(base).Info("bye")

	// --- Assert ---
	require.Contains(t, buf.String(), `msg=hello run_id=r1 plant=royal-fern`)
	require.Contains(t, buf.String(), `msg=bye run_id=r1`)
	require.NotContains(t, buf.String(), `msg=bye run_id=r1 plant`)
}
