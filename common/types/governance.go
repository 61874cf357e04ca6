package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// WeiDecimals is the number of decimals of the staked token.
const WeiDecimals = 18

// Proposal is the address of a spell that voters put their weight on.
type Proposal = common.Address

// Slate is the content id of an etched, immutable list of proposals.
type Slate = common.Hash

// VoteKind tells how a vote event carries its proposals.
type VoteKind uint8

const (
	// VoteByList is a vote(address[]) call with a literal list of proposals.
	VoteByList VoteKind = iota
	// VoteBySlate is a vote(bytes32) call that references an etched slate.
	VoteBySlate
)

func (k VoteKind) String() string {
	switch k {
	case VoteByList:
		return "list"
	case VoteBySlate:
		return "slate"
	default:
		return "unknown"
	}
}

// VoteEvent is a single vote declaration as it was found in the log.
type VoteEvent struct {
	Voter common.Address
	Kind  VoteKind
	// Yays is set for VoteByList.
	Yays []Proposal
	// Slate is set for VoteBySlate.
	Slate Slate

	Block  uint64
	TxHash common.Hash
	Index  uint
}

// Voter is the current state of a single voter.
type Voter struct {
	Address common.Address
	Yays    []Proposal
	Weight  decimal.Decimal
}

// Supports returns true if the voter currently votes for the proposal.
func (v *Voter) Supports(p Proposal) bool {
	for _, yay := range v.Yays {
		if yay == p {
			return true
		}
	}
	return false
}

// VoterWeight is a voter address with the weight it contributes.
type VoterWeight struct {
	Voter  common.Address  `json:"voter"`
	Weight decimal.Decimal `json:"weight"`
}

// WeightFromWei converts an integer amount of wei into a decimal token amount.
// The conversion is exact.
func WeightFromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -WeiDecimals)
}
