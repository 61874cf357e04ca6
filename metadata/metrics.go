package metadata

import (
	"github.com/spacemeshos/go-chief/metrics"
)

const subsystem = "metadata"

var (
	fetches = metrics.NewCounter(
		"fetches",
		subsystem,
		"number of interface downloads",
		[]string{"outcome"},
	)
	lookups = metrics.NewCounter(
		"lookups",
		subsystem,
		"interface lookups by the layer that answered them",
		[]string{"source"},
	)
)
