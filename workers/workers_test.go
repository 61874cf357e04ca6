package workers

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCollect(t *testing.T) {
	keys := []int{1, 2, 3, 4, 5}
	failing := errors.New("odd")
	results := Collect(context.Background(), 2, keys, func(_ context.Context, k int) (string, error) {
		if k == 3 {
			return "", failing
		}
		return fmt.Sprint(k * 10), nil
	})
	require.Len(t, results, len(keys))
	for i, res := range results {
		require.Equal(t, keys[i], res.Key)
		if res.Key == 3 {
			require.ErrorIs(t, res.Err, failing)
			continue
		}
		require.NoError(t, res.Err)
		require.Equal(t, fmt.Sprint(res.Key*10), res.Value)
	}
}

func TestCollectRespectsLimit(t *testing.T) {
	const limit = 3
	var inflight, peak atomic.Int32
	keys := make([]int, 50)
	for i := range keys {
		keys[i] = i
	}
	Collect(context.Background(), limit, keys, func(_ context.Context, k int) (int, error) {
		n := inflight.Add(1)
		defer inflight.Add(-1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		return k, nil
	})
	require.LessOrEqual(t, peak.Load(), int32(limit))
}

func TestAll(t *testing.T) {
	values, err := All(context.Background(), 0, []string{"a", "bb", "ccc"},
		func(_ context.Context, k string) (int, error) {
			return len(k), nil
		})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestAllAbortsOnFailure(t *testing.T) {
	failing := errors.New("remote failure")
	var calls atomic.Int32
	values, err := All(context.Background(), 1, []int{1, 2, 3, 4},
		func(ctx context.Context, k int) (int, error) {
			calls.Add(1)
			if k == 2 {
				return 0, failing
			}
			return k, nil
		})
	require.ErrorIs(t, err, failing)
	require.Nil(t, values)
	require.EqualValues(t, 2, calls.Load())
}

func TestEmpty(t *testing.T) {
	require.Empty(t, Collect(context.Background(), 1, nil, func(context.Context, int) (int, error) {
		return 0, nil
	}))
	values, err := All(context.Background(), 1, nil, func(context.Context, int) (int, error) {
		return 0, nil
	})
	require.NoError(t, err)
	require.Empty(t, values)
}
