package logctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromCtx_ReturnsStoredLogger(t *testing.T) {
	base := zap.NewNop().Sugar()
	stored := zap.NewNop().Sugar()

	ctx := context.WithValue(context.Background(), LoggerKey, stored)
	require.Same(t, stored, FromCtx(ctx, base))
}

func TestFromCtx_EnrichesFromPrimitives(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core).Sugar()

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-1")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")

	FromCtx(ctx, base).Infow("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "trace-1", fields["trace_id"])
	require.Equal(t, "user-1", fields["user_id"])
}

func TestFromCtx_BareStringKeysAreIgnored(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core).Sugar()

	ctx := context.WithValue(context.Background(), "user_id", "user-1") //nolint:staticcheck
	FromCtx(ctx, base).Infow("hello")

	require.Equal(t, 1, logs.Len())
	require.NotContains(t, logs.All()[0].ContextMap(), "user_id")
}

func TestFromCtx_NilContextFallsBack(t *testing.T) {
	base := zap.NewNop().Sugar()
	require.Same(t, base, FromCtx(nil, base))
}
