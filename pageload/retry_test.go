package pageload_test

import (
	"context"
	"testing"
	"time"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/pageload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "data:image/png;base64,aGk=", nil
		}

		dataURL, err := pageload.FetchWithRetryDelays(context.Background(), "p.png", fetch, []time.Duration{0, 0})
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,aGk=", dataURL)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", insideideo.Errorf(insideideo.EUNAVAILABLE, "transient")
			}
			return "data:image/png;base64,aGk=", nil
		}

		_, err := pageload.FetchWithRetryDelays(context.Background(), "p.png", fetch, []time.Duration{0, 0})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when all attempts fail", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", insideideo.Errorf(insideideo.EUNAVAILABLE, "attempt %d", calls)
		}

		_, err := pageload.FetchWithRetryDelays(context.Background(), "p.png", fetch, []time.Duration{0, 0})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Contains(t, insideideo.ErrorMessage(err), "attempt 3")
	})

	t.Run("respects context cancellation between attempts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", insideideo.Errorf(insideideo.EUNAVAILABLE, "fail")
		}

		_, err := pageload.FetchWithRetryDelays(ctx, "p.png", fetch, []time.Duration{time.Hour})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests", func(t *testing.T) {
		t.Parallel()

		limiter := pageload.NewLimiter(100)
		ctx := context.Background()

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Wait(ctx))
		}
		// Two waits at 100 rps is at least ~20ms.
		assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	})

	t.Run("returns error on canceled context", func(t *testing.T) {
		t.Parallel()

		limiter := pageload.NewLimiter(0.001)
		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, limiter.Wait(ctx))

		cancel()
		require.Error(t, limiter.Wait(ctx))
	})
}
