package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// chiefJSON is the subset of the DSChief interface used by the tool.
const chiefJSON = `[
{"constant":true,"inputs":[],"name":"hat","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes32"},{"name":"","type":"uint256"}],"name":"slates","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"deposits","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"approvals","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"yays","type":"address[]"}],"name":"vote","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"slate","type":"bytes32"}],"name":"vote","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"yays","type":"address[]"}],"name":"etch","outputs":[{"name":"slate","type":"bytes32"}],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"whom","type":"address"}],"name":"lift","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"slate","type":"bytes32"}],"name":"Etch","type":"event"}
]`

// spellJSON is the DSSpell interface.
const spellJSON = `[
{"constant":true,"inputs":[],"name":"done","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"whom","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"data","outputs":[{"name":"","type":"bytes"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"mana","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[],"name":"cast","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

var (
	// ChiefABI is the parsed DSChief interface.
	ChiefABI = mustParse(chiefJSON)
	// SpellABI is the parsed DSSpell interface.
	SpellABI = mustParse(spellJSON)

	// EtchTopic is the topic of Etch(bytes32) events.
	EtchTopic = crypto.Keccak256Hash([]byte("Etch(bytes32)"))
	// VoteListTopic is the ds-note topic of vote(address[]) calls.
	VoteListTopic = NoteTopic("vote(address[])")
	// VoteSlateTopic is the ds-note topic of vote(bytes32) calls.
	VoteSlateTopic = NoteTopic("vote(bytes32)")
)

// Chief method names. Overloaded methods get a numeric suffix from the abi package.
const (
	MethodHat      = "hat"
	MethodSlates   = "slates"
	MethodDeposits = "deposits"
	MethodLift     = "lift"

	MethodDone = "done"
	MethodWhom = "whom"
	MethodData = "data"
	MethodCast = "cast"
)

func mustParse(definition string) *abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return &parsed
}

// NoteTopic converts a function signature into the first topic of a ds-note log:
// the 4 byte selector left aligned in 32 bytes.
func NoteTopic(signature string) common.Hash {
	var topic common.Hash
	copy(topic[:], crypto.Keccak256([]byte(signature))[:4])
	return topic
}
