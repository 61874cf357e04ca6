package spell

import (
	"github.com/spacemeshos/go-chief/metrics"
)

var classified = metrics.NewCounter(
	"classified",
	"spell",
	"number of spells classified by action kind",
	[]string{"kind"},
)
