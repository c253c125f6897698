package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowAndPrune(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	l := NewRateLimiter(1, 2)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("10.0.0.1"))
	require.True(t, l.Allow("10.0.0.1"))
	require.False(t, l.Allow("10.0.0.1"))
	require.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	require.True(t, l.Allow("10.0.0.1"))

	now = now.Add(visitorTTL + time.Second)
	require.NoError(t, l.Prune(context.Background()))
	require.Empty(t, l.visitors)
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	l := NewRateLimiter(0, 0)

	for range 100 {
		require.True(t, l.Allow("10.0.0.1"))
	}
}
