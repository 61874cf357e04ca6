package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends the registry to a prometheus pushgateway once. A run is a short lived
// batch job, so there is no periodic pusher.
func Push(ctx context.Context, url, job string, grouping map[string]string, headers map[string]string) error {
	header := http.Header{}
	for k, v := range headers {
		header.Add(k, v)
	}
	pusher := push.New(url, job).Gatherer(Registry).Header(header)
	for k, v := range grouping {
		pusher = pusher.Grouping(k, v)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
