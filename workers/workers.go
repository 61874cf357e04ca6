// Package workers runs one unit of work per key on a bounded number of goroutines.
//
// Both helpers are barriers: they return only after every started unit has finished.
// Each unit writes to the slot of its own key so results need no locking.
package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the number of units in flight when no limit is given.
const DefaultLimit = 10

// Result of a single unit of work.
type Result[K comparable, V any] struct {
	Key   K
	Value V
	Err   error
}

// Collect runs fn for every key and returns the results in key order.
// A failing unit only fails its own result.
func Collect[K comparable, V any](
	ctx context.Context,
	limit int,
	keys []K,
	fn func(context.Context, K) (V, error),
) []Result[K, V] {
	results := make([]Result[K, V], len(keys))
	var eg errgroup.Group
	eg.SetLimit(normalize(limit))
	for i, key := range keys {
		eg.Go(func() error {
			value, err := fn(ctx, key)
			results[i] = Result[K, V]{Key: key, Value: value, Err: err}
			return nil
		})
	}
	eg.Wait()
	return results
}

// All runs fn for every key and returns the values in key order.
// The first failure cancels the context passed to the remaining units and is returned.
func All[K comparable, V any](
	ctx context.Context,
	limit int,
	keys []K,
	fn func(context.Context, K) (V, error),
) ([]V, error) {
	values := make([]V, len(keys))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(normalize(limit))
	for i, key := range keys {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, err := fn(ctx, key)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

func normalize(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
