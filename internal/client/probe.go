package client

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	healthInitialBackoff = 500 * time.Millisecond
	healthMaxBackoff     = 8 * time.Second
)

// WaitHealthy polls the health endpoint with exponential backoff until the
// server answers OK or the wall-clock ceiling passes. It exists to mask
// cold-start latency of the server process, nothing more.
func (c *Client) WaitHealthy(ctx context.Context, ceiling time.Duration) error {
	deadline := time.Now().Add(ceiling)
	backoff := healthInitialBackoff

	var lastErr error

	for {
		health, err := c.Health(ctx)

		if err == nil {
			if health.Status == "OK" {
				return nil
			}
			err = errors.New("unexpected health status: " + health.Status)
		}

		lastErr = err

		if time.Now().Add(backoff).After(deadline) {
			return fmt.Errorf("server not healthy after %s: %w", ceiling, lastErr)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2

		if backoff > healthMaxBackoff {
			backoff = healthMaxBackoff
		}
	}
}
