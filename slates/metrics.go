package slates

import (
	"github.com/spacemeshos/go-chief/metrics"
)

var probes = metrics.NewCounter(
	"probes",
	"slates",
	"number of slate positions probed by result",
	[]string{"result"},
)
