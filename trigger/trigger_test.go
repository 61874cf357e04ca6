package trigger

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/log/logtest"
	"github.com/spacemeshos/go-chief/tally"
)

var (
	chief = common.Address{0xc}
	p1    = types.Proposal{0x1}
	p2    = types.Proposal{0x2}
	p3    = types.Proposal{0x3}
)

func result(totals map[types.Proposal]int64, order ...types.Proposal) *tally.Result {
	var voters []types.Voter
	for i, p := range order {
		voters = append(voters, types.Voter{
			Address: common.Address{byte(i + 1)},
			Yays:    []types.Proposal{p},
			Weight:  decimal.NewFromInt(totals[p]),
		})
	}
	return tally.Tally(voters)
}

func spells(executed map[types.Proposal]bool) map[types.Proposal]types.Classification {
	out := make(map[types.Proposal]types.Classification, len(executed))
	for p, done := range executed {
		out[p] = types.Unclassified(done)
	}
	return out
}

func proposal(p types.Proposal) *types.Proposal {
	return &p
}

func TestDecide(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		result   *tally.Result
		hat      types.Proposal
		executed map[types.Proposal]bool
		expected Plan
	}{
		{
			desc:     "leader is not hat",
			result:   result(map[types.Proposal]int64{p1: 30, p2: 10}, p1, p2),
			hat:      p2,
			executed: map[types.Proposal]bool{p1: false, p2: true},
			expected: Plan{Promote: proposal(p1)},
		},
		{
			desc:     "hat leads and is not cast",
			result:   result(map[types.Proposal]int64{p1: 30, p2: 10}, p1, p2),
			hat:      p1,
			executed: map[types.Proposal]bool{p1: false, p2: false},
			expected: Plan{Execute: proposal(p1)},
		},
		{
			desc:     "hat leads and is cast",
			result:   result(map[types.Proposal]int64{p1: 30, p2: 10}, p1, p2),
			hat:      p1,
			executed: map[types.Proposal]bool{p1: true, p2: false},
		},
		{
			desc:     "leader spell unknown",
			result:   result(map[types.Proposal]int64{p1: 30, p2: 10}, p1, p2),
			hat:      p2,
			executed: map[types.Proposal]bool{p2: false},
		},
		{
			desc:     "tie with hat",
			result:   result(map[types.Proposal]int64{p1: 20, p2: 20}, p1, p2),
			hat:      p2,
			executed: map[types.Proposal]bool{p1: false, p2: false},
			expected: Plan{Execute: proposal(p2)},
		},
		{
			desc:     "hat without votes",
			result:   result(map[types.Proposal]int64{p1: 5}, p1),
			hat:      p3,
			executed: map[types.Proposal]bool{p1: false, p3: false},
			expected: Plan{Promote: proposal(p1)},
		},
		{
			desc:     "empty tally",
			result:   tally.Tally(nil),
			hat:      p1,
			executed: map[types.Proposal]bool{p1: false},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			plan := Decide(tc.result, tc.hat, spells(tc.executed))
			require.Equal(t, tc.expected, plan)
			if plan.Promote != nil {
				require.NotEqual(t, tc.hat, *plan.Promote)
			}
		})
	}
}

func mined(t *testing.T, submitter *chain.MockSubmitter, req chain.Request, status uint64) *ethtypes.Transaction {
	tx := ethtypes.NewTx(&ethtypes.LegacyTx{Nonce: uint64(len(req.Method))})
	submitter.EXPECT().Submit(gomock.Any(), req).Return(tx, nil)
	submitter.EXPECT().WaitMined(gomock.Any(), tx).Return(&ethtypes.Receipt{
		Status:      status,
		BlockNumber: big.NewInt(100),
	}, nil)
	return tx
}

func TestApplyPromote(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := chain.NewMockSubmitter(ctrl)
	tx := mined(t, submitter, chain.Request{
		To:     chief,
		ABI:    chain.ChiefABI,
		Method: chain.MethodLift,
		Args:   []any{p1},
	}, ethtypes.ReceiptStatusSuccessful)

	trigger := New(submitter, chief, Config{Lift: true}, WithLogger(logtest.New(t)))
	outcome, err := trigger.Apply(context.Background(), Plan{Promote: proposal(p1)})
	require.NoError(t, err)
	require.Equal(t, &Receipt{Proposal: p1, Tx: tx.Hash(), Block: 100}, outcome.Promoted)
	require.Nil(t, outcome.Executed)
	require.Empty(t, outcome.Skipped)
}

func TestApplyExecute(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := chain.NewMockSubmitter(ctrl)
	tx := mined(t, submitter, chain.Request{
		To:     p2,
		ABI:    chain.SpellABI,
		Method: chain.MethodCast,
	}, ethtypes.ReceiptStatusSuccessful)

	outcome, err := New(submitter, chief, Config{Cast: true}).Apply(context.Background(), Plan{Execute: proposal(p2)})
	require.NoError(t, err)
	require.Equal(t, tx.Hash(), outcome.Executed.Tx)
}

func TestApplyUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := chain.NewMockSubmitter(ctrl)

	plan := Plan{Promote: proposal(p1), Execute: proposal(p2)}
	outcome, err := New(submitter, chief, Config{}).Apply(context.Background(), plan)
	require.NoError(t, err)
	require.Equal(t, []string{ActionPromote, ActionExecute}, outcome.Skipped)
	require.Nil(t, outcome.Promoted)
	require.Nil(t, outcome.Executed)
}

func TestCastImpliesLift(t *testing.T) {
	require.True(t, Config{Cast: true}.Normalize().Lift)
	require.False(t, Config{}.Normalize().Lift)

	ctrl := gomock.NewController(t)
	submitter := chain.NewMockSubmitter(ctrl)
	mined(t, submitter, chain.Request{
		To:     chief,
		ABI:    chain.ChiefABI,
		Method: chain.MethodLift,
		Args:   []any{p1},
	}, ethtypes.ReceiptStatusSuccessful)

	outcome, err := New(submitter, chief, Config{Cast: true}).Apply(context.Background(), Plan{Promote: proposal(p1)})
	require.NoError(t, err)
	require.NotNil(t, outcome.Promoted)
}

func TestApplyFailures(t *testing.T) {
	t.Run("submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		submitter := chain.NewMockSubmitter(ctrl)
		submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, chain.ErrNoSigner)

		_, err := New(submitter, chief, Config{Lift: true}).Apply(context.Background(), Plan{Promote: proposal(p1)})
		require.ErrorIs(t, err, chain.ErrNoSigner)
	})
	t.Run("reverted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		submitter := chain.NewMockSubmitter(ctrl)
		tx := ethtypes.NewTx(&ethtypes.LegacyTx{})
		submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(tx, nil)
		submitter.EXPECT().WaitMined(gomock.Any(), tx).Return(
			&ethtypes.Receipt{Status: ethtypes.ReceiptStatusFailed}, chain.ErrTxReverted)

		_, err := New(submitter, chief, Config{Cast: true}).Apply(context.Background(), Plan{Execute: proposal(p2)})
		require.ErrorIs(t, err, chain.ErrTxReverted)
	})
	t.Run("wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		submitter := chain.NewMockSubmitter(ctrl)
		tx := ethtypes.NewTx(&ethtypes.LegacyTx{})
		failure := errors.New("connection lost")
		submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(tx, nil)
		submitter.EXPECT().WaitMined(gomock.Any(), tx).Return(nil, failure)

		outcome, err := New(submitter, chief, Config{Lift: true}).Apply(context.Background(), Plan{Promote: proposal(p1)})
		require.ErrorIs(t, err, failure)
		require.Nil(t, outcome.Promoted)
	})
}
