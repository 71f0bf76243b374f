package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used in health results. It matches the
// service name given to the underlying httpclient.Client.
func (c *MerchantClient) Name() string {
	return "merchant-api"
}

// HealthCheck reports the merchant API's availability from the circuit
// breaker state; no network call is made. A failing merchant API does not
// make this service unready: views surface the fetch error instead.
func (c *MerchantClient) HealthCheck(_ context.Context) error {
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.Name())
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", c.Name())
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", c.Name(), state)
	}
}
