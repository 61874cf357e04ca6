// Package chief reconstructs the state of a chief vote and acts on it.
package chief

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/replay"
	"github.com/spacemeshos/go-chief/slates"
	"github.com/spacemeshos/go-chief/tally"
	"github.com/spacemeshos/go-chief/trigger"
	"github.com/spacemeshos/go-chief/weights"
	"github.com/spacemeshos/go-chief/workers"
)

type Config struct {
	// Address of the chief contract.
	Address common.Address `mapstructure:"address"`
	// FromBlock is where the log scan starts, usually the deployment block of the chief.
	FromBlock uint64 `mapstructure:"from-block"`
	// Concurrency is the number of remote reads in flight during slate and weight lookups.
	Concurrency int `mapstructure:"concurrency"`
	// ProbeLimit is the largest slate that is resolved.
	ProbeLimit int `mapstructure:"probe-limit"`
}

func DefaultConfig() Config {
	return Config{
		Concurrency: workers.DefaultLimit,
		ProbeLimit:  slates.DefaultProbeLimit,
	}
}

// Report is the state of the vote at the time of the run.
type Report struct {
	// Time is when the run started.
	Time   time.Time      `json:"time"`
	Hat    types.Proposal `json:"hat"`
	Ranked []tally.Entry  `json:"ranked"`
	// Classifications has an entry for every ranked proposal whose spell could be read.
	Classifications map[types.Proposal]types.Classification `json:"spells"`
	// Voters lists the supporters of every ranked proposal.
	Voters  map[types.Proposal][]types.VoterWeight `json:"voters"`
	Outcome trigger.Outcome                        `json:"outcome"`
}

type Engine struct {
	logger  *zap.Logger
	clock   clockwork.Clock
	cfg     Config
	logs    chain.LogFilterer
	caller  chain.Caller
	slates  *slates.Resolver
	weights *weights.Fetcher
	spells  classifier
	trigger actuator
}

type Opt func(*Engine)

func WithClock(clock clockwork.Clock) Opt {
	return func(e *Engine) {
		e.clock = clock
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(e *Engine) {
		e.logger = logger
	}
}

func New(
	cfg Config,
	logs chain.LogFilterer,
	caller chain.Caller,
	spells classifier,
	act actuator,
	opts ...Opt,
) *Engine {
	e := &Engine{
		logger:  zap.NewNop(),
		clock:   clockwork.NewRealClock(),
		cfg:     cfg,
		logs:    logs,
		caller:  caller,
		spells:  spells,
		trigger: act,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.slates = slates.New(caller, cfg.Address,
		slates.WithLogger(e.logger.Named("slates")),
		slates.WithProbeLimit(cfg.ProbeLimit),
	)
	e.weights = weights.New(caller, cfg.Address, weights.WithLogger(e.logger.Named("weights")))
	return e
}

// Run replays the vote log, tallies the current votes, classifies the ranked
// spells and applies the authorized actions.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	start := e.clock.Now()
	etches, err := e.logs.FilterLogs(ctx, chain.LogQuery{
		Address:   e.cfg.Address,
		Topics:    replay.EtchTopics(),
		FromBlock: e.cfg.FromBlock,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch etch logs: %w", err)
	}
	notes, err := e.logs.FilterLogs(ctx, chain.LogQuery{
		Address:   e.cfg.Address,
		Topics:    replay.Topics(),
		FromBlock: e.cfg.FromBlock,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch vote logs: %w", err)
	}
	events := replay.ParseNotes(e.logger, notes)
	e.logger.Info("vote log fetched",
		zap.Int("etches", len(etches)),
		zap.Int("notes", len(notes)),
		zap.Int("votes", len(events)),
	)

	resolutions, err := e.resolve(ctx, merge(replay.ParseEtches(etches), replay.Slates(events)))
	if err != nil {
		return nil, err
	}
	voters := replay.Replay(events, resolutions)
	if err := e.weigh(ctx, voters); err != nil {
		return nil, err
	}

	result := tally.Tally(voters)
	ranked := result.Ranked()
	proposals := make([]types.Proposal, 0, len(ranked))
	supporters := make(map[types.Proposal][]types.VoterWeight, len(ranked))
	for _, entry := range ranked {
		proposals = append(proposals, entry.Proposal)
		supporters[entry.Proposal] = tally.VotersFor(entry.Proposal, voters)
	}
	classifications := e.spells.ClassifyAll(ctx, proposals)

	hat, err := chain.Single[common.Address](e.caller.Call(ctx, chain.Request{
		To:     e.cfg.Address,
		ABI:    chain.ChiefABI,
		Method: chain.MethodHat,
	}))
	if err != nil {
		return nil, fmt.Errorf("read hat: %w", err)
	}

	report := &Report{
		Time:            start,
		Hat:             hat,
		Ranked:          ranked,
		Classifications: classifications,
		Voters:          supporters,
	}
	plan := trigger.Decide(result, hat, classifications)
	report.Outcome, err = e.trigger.Apply(ctx, plan)
	if err != nil {
		return nil, err
	}

	votersGauge.WithLabelValues().Set(float64(len(voters)))
	proposalsGauge.WithLabelValues().Set(float64(len(ranked)))
	runDuration.WithLabelValues().Observe(e.clock.Since(start).Seconds())
	fields := []zap.Field{
		zap.Stringer("hat", hat),
		zap.Int("voters", len(voters)),
		zap.Int("proposals", len(ranked)),
		zap.Duration("duration", e.clock.Since(start)),
	}
	if leader, ok := result.Leader(); ok {
		fields = append(fields, zap.Stringer("leader", leader.Proposal), zap.Stringer("weight", leader.Total))
	}
	e.logger.Info("vote tallied", fields...)
	return report, nil
}

// resolve looks up every slate. A slate that fails to resolve counts as empty.
func (e *Engine) resolve(ctx context.Context, keys []types.Slate) (map[types.Slate][]types.Proposal, error) {
	results := workers.Collect(ctx, e.cfg.Concurrency, keys, e.slates.Resolve)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resolutions := make(map[types.Slate][]types.Proposal, len(results))
	for _, res := range results {
		if res.Err != nil {
			e.logger.Warn("failed to resolve slate", zap.Stringer("slate", res.Key), zap.Error(res.Err))
			continue
		}
		resolutions[res.Key] = res.Value
	}
	e.logger.Debug("slates resolved", zap.Int("requested", len(keys)), zap.Int("resolved", len(resolutions)))
	return resolutions, nil
}

// weigh sets the weight of every voter. Any failed read fails the run.
func (e *Engine) weigh(ctx context.Context, voters []types.Voter) error {
	addresses := make([]common.Address, len(voters))
	for i := range voters {
		addresses[i] = voters[i].Address
	}
	values, err := workers.All(ctx, e.cfg.Concurrency, addresses, e.weights.Weight)
	if err != nil {
		return fmt.Errorf("fetch weights: %w", err)
	}
	for i := range voters {
		voters[i].Weight = values[i]
	}
	return nil
}

func merge(lists ...[]types.Slate) []types.Slate {
	var out []types.Slate
	seen := make(map[types.Slate]struct{})
	for _, list := range lists {
		for _, slate := range list {
			if _, ok := seen[slate]; ok {
				continue
			}
			seen[slate] = struct{}{}
			out = append(out, slate)
		}
	}
	return out
}
