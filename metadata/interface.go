package metadata

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -typed -package=metadata -destination=./mocks.go -source=./interface.go

// Fetcher downloads the raw interface description of a contract.
type Fetcher interface {
	Fetch(ctx context.Context, address common.Address) ([]byte, error)
}

// Source returns raw interface descriptions, possibly from a cache.
type Source interface {
	Get(ctx context.Context, address common.Address) ([]byte, error)
}

// Provider returns parsed contract interfaces.
type Provider interface {
	Interface(ctx context.Context, address common.Address) (*abi.ABI, error)
}
