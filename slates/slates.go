// Package slates resolves etched slates into the proposals they list.
//
// The chief exposes no length for a slate. Positions are probed one by one
// until the call fails, and the failure marks the end of the slate.
package slates

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
)

// DefaultProbeLimit bounds the number of positions probed for a single slate.
const DefaultProbeLimit = 64

var (
	// ErrEndOfRange is returned by a probe past the last position of a slate.
	ErrEndOfRange = errors.New("end of slate")
	// ErrSlateTooLarge is returned when a slate has more positions than the probe limit.
	ErrSlateTooLarge = errors.New("slate exceeds probe limit")
)

// Resolver resolves and caches slates. Safe for concurrent use.
type Resolver struct {
	logger *zap.Logger
	caller chain.Caller
	chief  common.Address
	limit  int

	mu    sync.Mutex
	cache map[types.Slate][]types.Proposal
	group singleflight.Group
}

type Opt func(*Resolver)

func WithLogger(logger *zap.Logger) Opt {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithProbeLimit(limit int) Opt {
	return func(r *Resolver) {
		if limit > 0 {
			r.limit = limit
		}
	}
}

func New(caller chain.Caller, chief common.Address, opts ...Opt) *Resolver {
	r := &Resolver{
		logger: zap.NewNop(),
		caller: caller,
		chief:  chief,
		limit:  DefaultProbeLimit,
		cache:  make(map[types.Slate][]types.Proposal),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the ordered proposals of the slate.
// Concurrent calls for the same slate share a single enumeration.
func (r *Resolver) Resolve(ctx context.Context, slate types.Slate) ([]types.Proposal, error) {
	if proposals, ok := r.cached(slate); ok {
		return proposals, nil
	}
	v, err, _ := r.group.Do(slate.Hex(), func() (any, error) {
		if proposals, ok := r.cached(slate); ok {
			return proposals, nil
		}
		proposals, err := r.enumerate(ctx, slate)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[slate] = proposals
		r.mu.Unlock()
		return proposals, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.Proposal), nil
}

func (r *Resolver) cached(slate types.Slate) ([]types.Proposal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	proposals, ok := r.cache[slate]
	return proposals, ok
}

func (r *Resolver) enumerate(ctx context.Context, slate types.Slate) ([]types.Proposal, error) {
	proposals := []types.Proposal{}
	for i := 0; i < r.limit; i++ {
		proposal, err := r.probe(ctx, slate, i)
		switch {
		case errors.Is(err, ErrEndOfRange):
			r.logger.Debug("slate resolved",
				zap.Stringer("slate", slate),
				zap.Int("size", len(proposals)),
			)
			return proposals, nil
		case err != nil:
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return nil, fmt.Errorf("%w: %s has more than %d proposals", ErrSlateTooLarge, slate, r.limit)
}

// probe reads a single position. Any failure that is not caused by the context
// is reported as ErrEndOfRange.
func (r *Resolver) probe(ctx context.Context, slate types.Slate, i int) (types.Proposal, error) {
	proposal, err := chain.Single[common.Address](r.caller.Call(ctx, chain.Request{
		To:     r.chief,
		ABI:    chain.ChiefABI,
		Method: chain.MethodSlates,
		Args:   []any{[32]byte(slate), big.NewInt(int64(i))},
	}))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			probes.WithLabelValues("canceled").Inc()
			return types.Proposal{}, ctxErr
		}
		probes.WithLabelValues("end").Inc()
		return types.Proposal{}, fmt.Errorf("%w at %d: %w", ErrEndOfRange, i, err)
	}
	probes.WithLabelValues("found").Inc()
	return proposal, nil
}
