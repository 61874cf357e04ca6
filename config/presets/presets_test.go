package presets

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	require.Equal(t, []string{"kovan", "mainnet"}, Options())

	mainnet, err := Get("mainnet")
	require.NoError(t, err)
	require.Equal(t, "mainnet", mainnet.Preset)
	require.Equal(t, common.HexToAddress("0x9eF05f7F6deB616fd37aC3c959a2dDD25A54E4F5"), mainnet.Chief.Address)
	require.EqualValues(t, 7705361, mainnet.Chief.FromBlock)

	kovan, err := Get("kovan")
	require.NoError(t, err)
	require.EqualValues(t, 6591861, kovan.Chief.FromBlock)

	_, err = Get("ropsten")
	require.ErrorContains(t, err, "doesn't exist")
}

func TestRegisterTwice(t *testing.T) {
	require.Panics(t, func() {
		register("mainnet", presets["mainnet"])
	})
}
