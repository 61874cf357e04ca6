package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -typed -package=chain -destination=./mocks.go -source=./interface.go

// Caller performs read-only contract calls.
type Caller interface {
	Call(ctx context.Context, req Request) ([]any, error)
}

// LogFilterer returns raw logs in chain order.
type LogFilterer interface {
	FilterLogs(ctx context.Context, query LogQuery) ([]types.Log, error)
}

// Submitter sends state changing calls and waits for them to be included.
type Submitter interface {
	Submit(ctx context.Context, req Request) (*types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}
