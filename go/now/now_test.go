package now

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNow_DefaultsToWallClock(t *testing.T) {
	before := time.Now()
	got := Now(context.Background())
	require.False(t, got.Before(before))
}

func TestNow_FixedOverride(t *testing.T) {
	ts := time.Unix(0, 12345).UTC()
	ctx := context.WithValue(context.Background(), ContextKey, ts)
	require.Equal(t, ts, Now(ctx))
	require.Equal(t, ts, Now(ctx))
}

func TestNow_ProviderOverride(t *testing.T) {
	var tick int64
	ctx := context.WithValue(context.Background(), ContextKey, Provider(func() time.Time {
		tick++
		return time.Unix(tick, 0).UTC()
	}))
	require.Equal(t, time.Unix(1, 0).UTC(), Now(ctx))
	require.Equal(t, time.Unix(2, 0).UTC(), Now(ctx))
}
