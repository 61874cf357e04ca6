package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// ActionKind is the class of governance action a spell performs.
type ActionKind string

const (
	ActionUnclassified             ActionKind = "unclassified"
	ActionFeeRateChange            ActionKind = "fee-rate-change"
	ActionDebtCeilingChange        ActionKind = "debt-ceiling-change"
	ActionLiquidationRatioChange   ActionKind = "liquidation-ratio-change"
	ActionLiquidationPenaltyChange ActionKind = "liquidation-penalty-change"
)

// NoAction is the name recorded for calls that were not recognized.
const NoAction = "none"

// Classification describes what a spell would do if cast.
type Classification struct {
	Kind   ActionKind     `json:"kind"`
	Name   string         `json:"name"`
	Target common.Address `json:"target"`
	Args   map[string]any `json:"args"`
	// Description is a human readable derived value, e.g. an annualized rate.
	Description string `json:"desc,omitempty"`
	// Executed is the done() flag of the spell.
	Executed bool `json:"cast"`
}

// Unclassified returns a classification that only carries the executed flag.
func Unclassified(executed bool) Classification {
	return Classification{
		Kind:     ActionUnclassified,
		Name:     NoAction,
		Args:     map[string]any{},
		Executed: executed,
	}
}

// Recognized is true when the action was decoded into a known kind.
func (c Classification) Recognized() bool {
	return c.Kind != ActionUnclassified
}
