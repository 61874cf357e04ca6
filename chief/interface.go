package chief

import (
	"context"

	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/trigger"
)

//go:generate mockgen -typed -package=chief -destination=./mocks.go -source=./interface.go

type classifier interface {
	ClassifyAll(ctx context.Context, proposals []types.Proposal) map[types.Proposal]types.Classification
}

type actuator interface {
	Apply(ctx context.Context, plan trigger.Plan) (trigger.Outcome, error)
}
