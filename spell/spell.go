// Package spell tells what a proposal would do if it was cast.
//
// A spell calls a single method on its target contract. The call data is
// decoded against the target's published interface and matched against
// the governance actions that are understood.
package spell

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/metadata"
	"github.com/spacemeshos/go-chief/workers"
)

var errShortCallData = errors.New("call data shorter than a selector")

// action describes how a recognized single uint256 argument call is interpreted.
type action struct {
	kind     types.ActionKind
	describe func(*big.Int) (string, error)
}

var actions = map[string]action{
	"setFee": {kind: types.ActionFeeRateChange, describe: AnnualPercent},
	"setTax": {kind: types.ActionFeeRateChange, describe: AnnualPercent},
	"setCap": {kind: types.ActionDebtCeilingChange, describe: infallible(WadAmount)},
	"setMat": {kind: types.ActionLiquidationRatioChange, describe: infallible(RayPercent)},
	"setAxe": {kind: types.ActionLiquidationPenaltyChange, describe: infallible(PenaltyPercent)},
}

func infallible(f func(*big.Int) string) func(*big.Int) (string, error) {
	return func(v *big.Int) (string, error) {
		return f(v), nil
	}
}

type Decoder struct {
	logger      *zap.Logger
	caller      chain.Caller
	interfaces  metadata.Provider
	concurrency int
}

type Opt func(*Decoder)

func WithLogger(logger *zap.Logger) Opt {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithConcurrency limits the number of spells classified at once by ClassifyAll.
func WithConcurrency(n int) Opt {
	return func(d *Decoder) {
		d.concurrency = n
	}
}

func New(caller chain.Caller, interfaces metadata.Provider, opts ...Opt) *Decoder {
	d := &Decoder{
		logger:      zap.NewNop(),
		caller:      caller,
		interfaces:  interfaces,
		concurrency: workers.DefaultLimit,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Classify reads the executed flag of the spell and decodes its action.
// Only a failure to read the flag is returned, anything else degrades to an
// unclassified result.
func (d *Decoder) Classify(ctx context.Context, proposal types.Proposal) (types.Classification, error) {
	done, err := chain.Single[bool](d.call(ctx, proposal, chain.MethodDone))
	if err != nil {
		return types.Classification{}, fmt.Errorf("read done of %s: %w", proposal, err)
	}
	target, err := chain.Single[common.Address](d.call(ctx, proposal, chain.MethodWhom))
	if err != nil {
		d.logger.Debug("spell target unknown", zap.Stringer("spell", proposal), zap.Error(err))
		classified.WithLabelValues(string(types.ActionUnclassified)).Inc()
		return types.Unclassified(done), nil
	}
	c, err := d.decode(ctx, proposal, target)
	if err != nil {
		d.logger.Debug("spell not decoded",
			zap.Stringer("spell", proposal),
			zap.Stringer("target", target),
			zap.Error(err),
		)
		c = types.Unclassified(done)
		c.Target = target
	}
	c.Executed = done
	classified.WithLabelValues(string(c.Kind)).Inc()
	return c, nil
}

func (d *Decoder) decode(ctx context.Context, proposal types.Proposal, target common.Address) (types.Classification, error) {
	data, err := chain.Single[[]byte](d.call(ctx, proposal, chain.MethodData))
	if err != nil {
		return types.Classification{}, err
	}
	if len(data) < 4 {
		return types.Classification{}, errShortCallData
	}
	iface, err := d.interfaces.Interface(ctx, target)
	if err != nil {
		return types.Classification{}, err
	}
	method, err := iface.MethodById(data[:4])
	if err != nil {
		return types.Classification{}, err
	}
	values, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return types.Classification{}, fmt.Errorf("unpack %s: %w", method.Sig, err)
	}

	c := types.Unclassified(false)
	c.Target = target
	act, ok := actions[method.RawName]
	if !ok || len(values) != 1 {
		return c, nil
	}
	amount, ok := values[0].(*big.Int)
	if !ok {
		return c, nil
	}
	desc, err := act.describe(amount)
	if err != nil {
		return types.Classification{}, fmt.Errorf("describe %s: %w", method.Sig, err)
	}
	c.Kind = act.kind
	c.Name = method.RawName
	c.Args = arguments(method.Inputs, values)
	c.Description = desc
	return c, nil
}

// ClassifyAll classifies proposals concurrently. Proposals whose executed flag
// can't be read are left out.
func (d *Decoder) ClassifyAll(ctx context.Context, proposals []types.Proposal) map[types.Proposal]types.Classification {
	results := workers.Collect(ctx, d.concurrency, proposals, d.Classify)
	classifications := make(map[types.Proposal]types.Classification, len(results))
	for _, res := range results {
		if res.Err != nil {
			d.logger.Warn("failed to classify spell", zap.Stringer("spell", res.Key), zap.Error(res.Err))
			continue
		}
		classifications[res.Key] = res.Value
	}
	return classifications
}

func (d *Decoder) call(ctx context.Context, spell types.Proposal, method string) ([]any, error) {
	return d.caller.Call(ctx, chain.Request{
		To:     spell,
		ABI:    chain.SpellABI,
		Method: method,
	})
}

func arguments(inputs abi.Arguments, values []any) map[string]any {
	args := make(map[string]any, len(values))
	for i, v := range values {
		name := inputs[i].Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		args[name] = v
	}
	return args
}
