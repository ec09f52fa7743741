package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartUsecaseSpan_NoParentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchMatches")
	defer span.End()

	require.Equal(t, ctx, got)
	require.False(t, span.SpanContext().IsValid())
}

func TestSpanComponent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "BoardService", spanComponent("usecase.BoardService.Home"))
	require.Equal(t, "adhoc", spanComponent("adhoc"))
}
