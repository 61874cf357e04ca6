// Package trigger lifts the leading proposal and casts the spell of the hat.
package trigger

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/tally"
)

const (
	ActionPromote = "promote"
	ActionExecute = "execute"
)

type Config struct {
	// Lift allows promoting the leading proposal to hat.
	Lift bool `mapstructure:"lift"`
	// Cast allows executing the hat. It implies Lift.
	Cast bool `mapstructure:"cast"`
	// ConfirmTimeout bounds the wait for a submitted transaction to be mined.
	ConfirmTimeout time.Duration `mapstructure:"confirm-timeout"`
}

func DefaultConfig() Config {
	return Config{ConfirmTimeout: 10 * time.Minute}
}

// Normalize enables Lift when Cast is requested.
func (c Config) Normalize() Config {
	if c.Cast {
		c.Lift = true
	}
	return c
}

// Plan lists the actions the tally calls for. Nil means no action.
type Plan struct {
	Promote *types.Proposal `json:"promote,omitempty"`
	Execute *types.Proposal `json:"execute,omitempty"`
}

// Empty is true when nothing needs to be done.
func (p Plan) Empty() bool {
	return p.Promote == nil && p.Execute == nil
}

// Decide plans actions from the tally and the current hat.
//
// The leader is promoted when it isn't the hat, has strictly more weight than
// the hat and its spell could be read. The hat is executed when it has weight,
// nothing outweighs it and its spell was read and not yet cast.
// Both conditions can't hold at once, so a proposal lifted now is cast on a later run.
func Decide(result *tally.Result, hat types.Proposal, spells map[types.Proposal]types.Classification) Plan {
	var plan Plan
	hatTotal := result.Total(hat)
	leader, ok := result.Leader()
	if ok && leader.Proposal != hat && leader.Total.GreaterThan(hatTotal) {
		if _, known := spells[leader.Proposal]; known {
			p := leader.Proposal
			plan.Promote = &p
		}
	}
	if hatTotal.IsPositive() && (!ok || hatTotal.GreaterThanOrEqual(leader.Total)) {
		if spell, known := spells[hat]; known && !spell.Executed {
			p := hat
			plan.Execute = &p
		}
	}
	return plan
}

// Receipt of a mined action.
type Receipt struct {
	Proposal types.Proposal `json:"proposal"`
	Tx       common.Hash    `json:"tx"`
	Block    uint64         `json:"block"`
}

// Outcome of applying a plan.
type Outcome struct {
	Plan     Plan     `json:"plan"`
	Promoted *Receipt `json:"promoted,omitempty"`
	Executed *Receipt `json:"executed,omitempty"`
	// Skipped lists planned actions that were not authorized.
	Skipped []string `json:"skipped,omitempty"`
}

type Trigger struct {
	logger    *zap.Logger
	submitter chain.Submitter
	chief     common.Address
	cfg       Config
}

type Opt func(*Trigger)

func WithLogger(logger *zap.Logger) Opt {
	return func(t *Trigger) {
		t.logger = logger
	}
}

func New(submitter chain.Submitter, chief common.Address, cfg Config, opts ...Opt) *Trigger {
	t := &Trigger{
		logger:    zap.NewNop(),
		submitter: submitter,
		chief:     chief,
		cfg:       cfg.Normalize(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Apply runs the authorized actions of the plan. Any failure is returned as is,
// nothing is retried.
func (t *Trigger) Apply(ctx context.Context, plan Plan) (Outcome, error) {
	outcome := Outcome{Plan: plan}
	if p := plan.Promote; p != nil {
		if !t.cfg.Lift {
			outcome.Skipped = append(outcome.Skipped, ActionPromote)
			t.skip(ActionPromote, *p)
		} else {
			receipt, err := t.Promote(ctx, *p)
			if err != nil {
				return outcome, err
			}
			outcome.Promoted = receipt
		}
	}
	if p := plan.Execute; p != nil {
		if !t.cfg.Cast {
			outcome.Skipped = append(outcome.Skipped, ActionExecute)
			t.skip(ActionExecute, *p)
		} else {
			receipt, err := t.Execute(ctx, *p)
			if err != nil {
				return outcome, err
			}
			outcome.Executed = receipt
		}
	}
	return outcome, nil
}

func (t *Trigger) skip(action string, proposal types.Proposal) {
	actions.WithLabelValues(action, "skipped").Inc()
	t.logger.Info("action not authorized",
		zap.String("action", action),
		zap.Stringer("proposal", proposal),
	)
}

// Promote lifts the proposal to hat and waits for the transaction to be mined.
func (t *Trigger) Promote(ctx context.Context, proposal types.Proposal) (*Receipt, error) {
	return t.send(ctx, ActionPromote, proposal, chain.Request{
		To:     t.chief,
		ABI:    chain.ChiefABI,
		Method: chain.MethodLift,
		Args:   []any{proposal},
	})
}

// Execute casts the spell and waits for the transaction to be mined.
func (t *Trigger) Execute(ctx context.Context, proposal types.Proposal) (*Receipt, error) {
	return t.send(ctx, ActionExecute, proposal, chain.Request{
		To:     proposal,
		ABI:    chain.SpellABI,
		Method: chain.MethodCast,
	})
}

func (t *Trigger) send(ctx context.Context, action string, proposal types.Proposal, req chain.Request) (*Receipt, error) {
	t.logger.Info("submitting action",
		zap.String("action", action),
		zap.Stringer("proposal", proposal),
	)
	tx, err := t.submitter.Submit(ctx, req)
	if err != nil {
		actions.WithLabelValues(action, "failed").Inc()
		return nil, fmt.Errorf("%s %s: %w", action, proposal, err)
	}
	if t.cfg.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.ConfirmTimeout)
		defer cancel()
	}
	receipt, err := t.submitter.WaitMined(ctx, tx)
	if err != nil {
		actions.WithLabelValues(action, "failed").Inc()
		return nil, fmt.Errorf("%s %s: %w", action, proposal, err)
	}
	actions.WithLabelValues(action, "mined").Inc()
	t.logger.Info("action mined",
		zap.String("action", action),
		zap.Stringer("proposal", proposal),
		zap.Stringer("tx", tx.Hash()),
	)
	r := &Receipt{Proposal: proposal, Tx: tx.Hash()}
	if receipt.BlockNumber != nil {
		r.Block = receipt.BlockNumber.Uint64()
	}
	return r, nil
}
