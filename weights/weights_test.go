package weights

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/log/logtest"
)

func TestWeight(t *testing.T) {
	chief := common.Address{0xc}
	voter := common.Address{0x1}
	ctrl := gomock.NewController(t)
	caller := chain.NewMockCaller(ctrl)

	wei, ok := new(big.Int).SetString("12500000000000000000", 10)
	require.True(t, ok)
	caller.EXPECT().Call(gomock.Any(), chain.Request{
		To:     chief,
		ABI:    chain.ChiefABI,
		Method: chain.MethodDeposits,
		Args:   []any{voter},
	}).Return([]any{wei}, nil)

	weight, err := New(caller, chief, WithLogger(logtest.New(t))).Weight(context.Background(), voter)
	require.NoError(t, err)
	require.Equal(t, "12.5", weight.String())
}

func TestWeightFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := chain.NewMockCaller(ctrl)
	failure := errors.New("connection refused")
	caller.EXPECT().Call(gomock.Any(), gomock.Any()).Return(nil, failure)

	_, err := New(caller, common.Address{}).Weight(context.Background(), common.Address{1})
	require.ErrorIs(t, err, failure)
}
