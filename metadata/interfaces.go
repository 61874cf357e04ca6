package metadata

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Interfaces parses descriptions returned by a Source.
type Interfaces struct {
	source Source
}

func NewInterfaces(source Source) *Interfaces {
	return &Interfaces{source: source}
}

func (i *Interfaces) Interface(ctx context.Context, address common.Address) (*abi.ABI, error) {
	data, err := i.source.Get(ctx, address)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse interface of %s: %w", address, err)
	}
	return &parsed, nil
}
