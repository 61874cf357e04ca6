package chief

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-chief/metrics"
)

const subsystem = "engine"

var (
	votersGauge = metrics.NewGauge(
		"voters",
		subsystem,
		"number of voters found in the log",
		[]string{},
	)
	proposalsGauge = metrics.NewGauge(
		"proposals",
		subsystem,
		"number of proposals with a positive total",
		[]string{},
	)
	runDuration = metrics.NewHistogramWithBuckets(
		"run_duration_seconds",
		subsystem,
		"duration of a full reconstruction",
		[]string{},
		prometheus.ExponentialBuckets(1, 2, 10),
	)
)
