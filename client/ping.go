package client

import (
	"context"
	"net/http"
	"time"

	"github.com/nerrad567/slipstream-core/rest"
)

// pingPath is the lightweight idempotent endpoint used for REST round-trip
// measurement.
const pingPath = "/gateway"

// RestPing measures one REST round trip to the service, independent of the
// transport heartbeat latency reported by GatewayPing.
//
// The start timestamp is captured by the dispatcher's PreSend hook, so
// time spent queued behind the rate limiter is not counted - the capture
// and the decision to send are inseparable. Concurrent probes are
// independent, each owning its own timestamp. Dispatch failures propagate
// unchanged; the probe performs no retries.
func (c *Client) RestPing(ctx context.Context) (time.Duration, error) {
	if c.dispatcher == nil {
		return 0, ErrNoDispatcher
	}

	var sentAt time.Time
	req := rest.Request{
		Method:  http.MethodGet,
		Path:    pingPath,
		PreSend: func() { sentAt = time.Now() },
	}

	if _, err := c.dispatcher.Do(ctx, req); err != nil {
		return 0, err
	}

	elapsed := time.Since(sentAt)
	c.logger.Debug("rest ping measured", "elapsed", elapsed)
	return elapsed, nil
}
