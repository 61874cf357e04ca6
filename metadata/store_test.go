package metadata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-chief/log/logtest"
)

func TestStoreCachesOnDisk(t *testing.T) {
	dir := t.TempDir()
	address := common.HexToAddress("0x448a5065aebb8e423f0896e6c5d525c040f59af3")

	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), address).Return([]byte(erc20), nil).Times(1)

	store, err := NewStore(fetcher, WithCacheDir(dir), WithStoreLogger(logtest.New(t)))
	require.NoError(t, err)
	for range 3 {
		data, err := store.Get(context.Background(), address)
		require.NoError(t, err)
		require.Equal(t, erc20, string(data))
	}

	stored, err := os.ReadFile(filepath.Join(dir, address.Hex()+".json"))
	require.NoError(t, err)
	require.Equal(t, erc20, string(stored))

	// a fresh store in the same directory doesn't go to the remote
	other, err := NewStore(NewMockFetcher(ctrl), WithCacheDir(dir))
	require.NoError(t, err)
	data, err := other.Get(context.Background(), address)
	require.NoError(t, err)
	require.Equal(t, erc20, string(data))
}

func TestStoreMissingInterface(t *testing.T) {
	dir := t.TempDir()
	address := common.Address{2}

	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), address).Return(nil, ErrNoInterface).Times(1)

	store, err := NewStore(fetcher, WithCacheDir(dir))
	require.NoError(t, err)
	for range 2 {
		_, err := store.Get(context.Background(), address)
		require.ErrorIs(t, err, ErrNoInterface)
	}
	_, err = os.Stat(filepath.Join(dir, address.Hex()+".json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoreTransientError(t *testing.T) {
	address := common.Address{3}
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().Fetch(gomock.Any(), address).Return(nil, errors.New("timeout")),
		fetcher.EXPECT().Fetch(gomock.Any(), address).Return([]byte(erc20), nil),
	)

	store, err := NewStore(fetcher)
	require.NoError(t, err)
	_, err = store.Get(context.Background(), address)
	require.Error(t, err)
	data, err := store.Get(context.Background(), address)
	require.NoError(t, err)
	require.Equal(t, erc20, string(data))
}

func TestStoreConcurrentGet(t *testing.T) {
	address := common.Address{4}
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), address).Return([]byte(erc20), nil).MinTimes(1)

	store, err := NewStore(fetcher, WithCacheDir(t.TempDir()))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := store.Get(context.Background(), address)
			assert.NoError(t, err)
			assert.Equal(t, erc20, string(data))
		}()
	}
	wg.Wait()
}

func TestInterfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)
	good, bad, missing := common.Address{1}, common.Address{2}, common.Address{3}
	source.EXPECT().Get(gomock.Any(), good).Return([]byte(erc20), nil)
	source.EXPECT().Get(gomock.Any(), bad).Return([]byte("{"), nil)
	source.EXPECT().Get(gomock.Any(), missing).Return(nil, ErrNoInterface)

	interfaces := NewInterfaces(source)
	parsed, err := interfaces.Interface(context.Background(), good)
	require.NoError(t, err)
	require.Contains(t, parsed.Methods, "setFee")

	_, err = interfaces.Interface(context.Background(), bad)
	require.ErrorContains(t, err, "parse interface")

	_, err = interfaces.Interface(context.Background(), missing)
	require.ErrorIs(t, err, ErrNoInterface)
}
