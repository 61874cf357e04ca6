// Package weights reads the stake of voters locked in the chief.
package weights

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/metrics"
)

var lookups = metrics.NewCounter(
	"lookups",
	"weights",
	"number of deposit reads",
	[]string{"outcome"},
)

type Fetcher struct {
	logger *zap.Logger
	caller chain.Caller
	chief  common.Address
}

type Opt func(*Fetcher)

func WithLogger(logger *zap.Logger) Opt {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

func New(caller chain.Caller, chief common.Address, opts ...Opt) *Fetcher {
	f := &Fetcher{
		logger: zap.NewNop(),
		caller: caller,
		chief:  chief,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Weight returns the deposit of the voter in whole tokens.
// A failed read is an error, the weight is never assumed to be zero.
func (f *Fetcher) Weight(ctx context.Context, voter common.Address) (decimal.Decimal, error) {
	wei, err := chain.Single[*big.Int](f.caller.Call(ctx, chain.Request{
		To:     f.chief,
		ABI:    chain.ChiefABI,
		Method: chain.MethodDeposits,
		Args:   []any{voter},
	}))
	lookups.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return decimal.Zero, fmt.Errorf("deposits of %s: %w", voter, err)
	}
	weight := types.WeightFromWei(wei)
	f.logger.Debug("voter weight", zap.Stringer("voter", voter), zap.Stringer("weight", weight))
	return weight, nil
}
