package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunOrdered(t *testing.T) {
	t.Run(`results keep index order`, func(t *testing.T) {
		for _, concurrency := range []int{0, 1, 4} {
			out, err := runOrdered(context.Background(), 6, concurrency, func(_ context.Context, i int) (string, error) {
				// later indexes finish first
				time.Sleep(time.Duration(6-i) * time.Millisecond)
				return fmt.Sprintf("r%d", i), nil
			})
			require.NoError(t, err)
			require.Equal(t, []string{"r0", "r1", "r2", "r3", "r4", "r5"}, out)
		}
	})

	t.Run(`zero jobs yields empty slice`, func(t *testing.T) {
		out, err := runOrdered(context.Background(), 0, 1, func(context.Context, int) (int, error) {
			return 0, nil
		})
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Empty(t, out)
	})

	t.Run(`sequential failure stops later jobs`, func(t *testing.T) {
		boom := errors.New("boom")
		var started atomic.Int32

		out, err := runOrdered(context.Background(), 5, 1, func(_ context.Context, i int) (int, error) {
			started.Add(1)
			if i == 1 {
				return 0, boom
			}
			return i, nil
		})
		require.ErrorIs(t, err, boom)
		require.Nil(t, out)
		require.Equal(t, int32(2), started.Load())
	})

	t.Run(`concurrency is bounded`, func(t *testing.T) {
		var running, peak atomic.Int32

		_, err := runOrdered(context.Background(), 10, 3, func(_ context.Context, i int) (int, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
			return i, nil
		})
		require.NoError(t, err)
		require.LessOrEqual(t, peak.Load(), int32(3))
	})

	t.Run(`cancelled parent context`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runOrdered(ctx, 3, 1, func(ctx context.Context, i int) (int, error) {
			return i, nil
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}
