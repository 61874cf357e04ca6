package slates

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/log/logtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	chief = common.HexToAddress("0x9eF05f7F6deB616fd37aC3c959a2dDD25A54E4F5")
	slate = types.Slate{0xaa}
)

// remote serves proposals as the slates(bytes32,uint256) getter would, reverting past the end.
func remote(t *testing.T, caller *chain.MockCaller, contents map[types.Slate][]types.Proposal) *chain.MockCallerCallCall {
	return caller.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req chain.Request) ([]any, error) {
			require.Equal(t, chief, req.To)
			require.Equal(t, chain.MethodSlates, req.Method)
			id := types.Slate(req.Args[0].([32]byte))
			i := req.Args[1].(*big.Int).Int64()
			proposals := contents[id]
			if i >= int64(len(proposals)) {
				return nil, errors.New("execution reverted")
			}
			return []any{proposals[i]}, nil
		})
}

func TestResolveProbesUntilFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := chain.NewMockCaller(ctrl)
	proposals := []types.Proposal{{1}, {2}}
	remote(t, caller, map[types.Slate][]types.Proposal{slate: proposals}).Times(3)

	r := New(caller, chief, WithLogger(logtest.New(t)))
	got, err := r.Resolve(context.Background(), slate)
	require.NoError(t, err)
	require.Equal(t, proposals, got)

	// cached, no more probes
	got, err = r.Resolve(context.Background(), slate)
	require.NoError(t, err)
	require.Equal(t, proposals, got)
}

func TestResolveEmptySlate(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := chain.NewMockCaller(ctrl)
	remote(t, caller, nil).Times(1)

	got, err := New(caller, chief).Resolve(context.Background(), slate)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestResolveTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := chain.NewMockCaller(ctrl)
	remote(t, caller, map[types.Slate][]types.Proposal{
		slate: {{1}, {2}, {3}, {4}},
	}).Times(3)

	_, err := New(caller, chief, WithProbeLimit(3)).Resolve(context.Background(), slate)
	require.ErrorIs(t, err, ErrSlateTooLarge)
}

func TestResolveCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := chain.NewMockCaller(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	caller.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ chain.Request) ([]any, error) {
			cancel()
			return nil, ctx.Err()
		})

	r := New(caller, chief)
	_, err := r.Resolve(ctx, slate)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, ErrEndOfRange)

	// nothing was cached, the next call probes again
	remote(t, caller, map[types.Slate][]types.Proposal{slate: {{7}}}).Times(2)
	got, err := r.Resolve(context.Background(), slate)
	require.NoError(t, err)
	require.Equal(t, []types.Proposal{{7}}, got)
}

func TestResolveConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := chain.NewMockCaller(ctrl)
	contents := map[types.Slate][]types.Proposal{
		{1}: {{1}, {2}},
		{2}: {{3}},
		{3}: {},
	}
	remote(t, caller, contents).AnyTimes()

	r := New(caller, chief)
	var wg sync.WaitGroup
	for range 4 {
		for id, expected := range contents {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := r.Resolve(context.Background(), id)
				if err != nil || len(got) != len(expected) {
					t.Errorf("slate %s: got %v, %v", id, got, err)
				}
			}()
		}
	}
	wg.Wait()
}
