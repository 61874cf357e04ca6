package trigger

import (
	"github.com/spacemeshos/go-chief/metrics"
)

var actions = metrics.NewCounter(
	"actions",
	"trigger",
	"number of governance actions by result",
	[]string{"action", "result"},
)
