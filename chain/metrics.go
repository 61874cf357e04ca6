package chain

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-chief/metrics"
)

const subsystem = "chain"

var (
	callDuration = metrics.NewHistogramWithBuckets(
		"call_duration_seconds",
		subsystem,
		"duration of node requests",
		[]string{"method", "outcome"},
		prometheus.ExponentialBuckets(0.01, 2, 12),
	)
	submitted = metrics.NewCounter(
		"submitted_transactions",
		subsystem,
		"number of submitted transactions",
		[]string{"method", "outcome"},
	)
)
