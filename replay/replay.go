// Package replay rebuilds the current vote of every voter from the chief's logs.
//
// Votes are recorded by ds-note as anonymous logs: the first topic is the
// selector of the called method, the second one is the caller, and the data
// carries the full call data after the wad, offset and length words.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/metrics"
)

// ErrDecodeFailed is returned for log entries that are not votes.
var ErrDecodeFailed = errors.New("not a vote")

const (
	wordSize = 32
	// wad, offset and length precede the call data.
	faxOffset = 3 * wordSize
)

var skipped = metrics.NewCounter(
	"skipped_logs",
	"replay",
	"number of log entries that could not be decoded",
	[]string{},
)

// Topics selects the vote logs of the chief.
func Topics() [][]common.Hash {
	return [][]common.Hash{{chain.VoteListTopic, chain.VoteSlateTopic}}
}

// EtchTopics selects the Etch events of the chief.
func EtchTopics() [][]common.Hash {
	return [][]common.Hash{{chain.EtchTopic}}
}

// ParseEtches returns the distinct slates in Etch events, in the order they were etched.
func ParseEtches(logs []ethtypes.Log) []types.Slate {
	var slates []types.Slate
	seen := make(map[types.Slate]struct{})
	for _, log := range logs {
		if len(log.Topics) < 2 || log.Topics[0] != chain.EtchTopic {
			continue
		}
		slate := log.Topics[1]
		if _, ok := seen[slate]; ok {
			continue
		}
		seen[slate] = struct{}{}
		slates = append(slates, slate)
	}
	return slates
}

// ParseNote decodes a single vote log. Every failure wraps ErrDecodeFailed.
func ParseNote(log ethtypes.Log) (types.VoteEvent, error) {
	if len(log.Topics) < 2 {
		return types.VoteEvent{}, fmt.Errorf("%w: %d topics", ErrDecodeFailed, len(log.Topics))
	}
	fax, err := callData(log.Data)
	if err != nil {
		return types.VoteEvent{}, err
	}
	if len(fax) < 4 || !bytes.Equal(fax[:4], log.Topics[0][:4]) {
		return types.VoteEvent{}, fmt.Errorf("%w: call data doesn't match selector %x", ErrDecodeFailed, log.Topics[0][:4])
	}
	method, err := chain.ChiefABI.MethodById(fax[:4])
	if err != nil {
		return types.VoteEvent{}, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	args, err := method.Inputs.Unpack(fax[4:])
	if err != nil {
		return types.VoteEvent{}, fmt.Errorf("%w: unpack %s: %w", ErrDecodeFailed, method.Sig, err)
	}
	if len(args) != 1 {
		return types.VoteEvent{}, fmt.Errorf("%w: %s has %d arguments", ErrDecodeFailed, method.Sig, len(args))
	}

	event := types.VoteEvent{
		Voter:  common.BytesToAddress(log.Topics[1][12:]),
		Block:  log.BlockNumber,
		TxHash: log.TxHash,
		Index:  log.Index,
	}
	switch topic := log.Topics[0]; topic {
	case chain.VoteListTopic:
		yays, ok := args[0].([]common.Address)
		if !ok {
			return types.VoteEvent{}, fmt.Errorf("%w: unexpected %T", ErrDecodeFailed, args[0])
		}
		event.Kind = types.VoteByList
		event.Yays = unique(yays)
	case chain.VoteSlateTopic:
		slate, ok := args[0].([32]byte)
		if !ok {
			return types.VoteEvent{}, fmt.Errorf("%w: unexpected %T", ErrDecodeFailed, args[0])
		}
		event.Kind = types.VoteBySlate
		event.Slate = slate
	default:
		return types.VoteEvent{}, fmt.Errorf("%w: topic %s", ErrDecodeFailed, topic)
	}
	return event, nil
}

// callData extracts the fax field of a ds-note log.
func callData(data []byte) ([]byte, error) {
	if len(data) < faxOffset {
		return nil, fmt.Errorf("%w: note data is %d bytes", ErrDecodeFailed, len(data))
	}
	length := new(big.Int).SetBytes(data[2*wordSize : faxOffset])
	if !length.IsUint64() || length.Uint64() > uint64(len(data)-faxOffset) {
		return nil, fmt.Errorf("%w: call data length %s out of bounds", ErrDecodeFailed, length)
	}
	return data[faxOffset : faxOffset+length.Uint64()], nil
}

// ParseNotes decodes vote logs in order, skipping entries that are not votes.
func ParseNotes(logger *zap.Logger, logs []ethtypes.Log) []types.VoteEvent {
	events := make([]types.VoteEvent, 0, len(logs))
	for _, log := range logs {
		event, err := ParseNote(log)
		if errors.Is(err, ErrDecodeFailed) {
			skipped.WithLabelValues().Inc()
			logger.Debug("skipping log entry",
				zap.Uint64("block", log.BlockNumber),
				zap.Stringer("tx", log.TxHash),
				zap.Uint("index", log.Index),
				zap.Error(err),
			)
			continue
		}
		events = append(events, event)
	}
	return events
}

// Slates returns the distinct slates referenced by votes, in first reference order.
func Slates(events []types.VoteEvent) []types.Slate {
	var slates []types.Slate
	seen := make(map[types.Slate]struct{})
	for _, event := range events {
		if event.Kind != types.VoteBySlate {
			continue
		}
		if _, ok := seen[event.Slate]; ok {
			continue
		}
		seen[event.Slate] = struct{}{}
		slates = append(slates, event.Slate)
	}
	return slates
}

// Replay applies events in order. The latest event of a voter replaces everything
// the voter declared before. Slates missing from resolutions count as empty.
// Voters are returned in order of their first vote.
func Replay(events []types.VoteEvent, resolutions map[types.Slate][]types.Proposal) []types.Voter {
	var voters []types.Voter
	index := make(map[common.Address]int)
	for _, event := range events {
		var yays []types.Proposal
		switch event.Kind {
		case types.VoteByList:
			yays = event.Yays
		case types.VoteBySlate:
			yays = resolutions[event.Slate]
		}
		yays = unique(yays)

		i, ok := index[event.Voter]
		if !ok {
			i = len(voters)
			index[event.Voter] = i
			voters = append(voters, types.Voter{Address: event.Voter})
		}
		voters[i].Yays = yays
	}
	return voters
}

// unique returns a copy of proposals without repetitions, keeping the first occurrence.
func unique(proposals []types.Proposal) []types.Proposal {
	out := make([]types.Proposal, 0, len(proposals))
	seen := make(map[types.Proposal]struct{}, len(proposals))
	for _, p := range proposals {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
