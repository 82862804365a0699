package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/wifinity-io/rms-client/pkg/rms"
)

// RetryPolicy decides whether a failed attempt may be retried. Network
// failures and 5xx responses are retryable; every 4xx (including 429) is a
// caller or input error and is surfaced immediately.
func RetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp != nil && resp.StatusCode >= 500 {
		return true, nil
	}

	return false, nil
}

// ExponentialBackoff returns the delay before the next attempt. attemptNum
// counts completed retries, so the first retry waits waitMin, the second
// 2*waitMin, doubling until waitMax.
func ExponentialBackoff(waitMin, waitMax time.Duration, attemptNum int, resp *http.Response) time.Duration {
	delay := waitMin
	for i := 0; i < attemptNum; i++ {
		delay *= 2
		if delay >= waitMax {
			return waitMax
		}
	}

	if delay > waitMax {
		return waitMax
	}

	return delay
}

// classifyNetworkError maps a transport failure onto the connection or
// timeout error kind. Status interpretation never happens here; any
// received response is handled by the response classifier instead.
func classifyNetworkError(err error) *rms.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return rms.NewTimeoutError("request timed out", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return rms.NewTimeoutError("request timed out", err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return rms.NewTimeoutError("request timed out", err)
	}

	return rms.NewConnectionError("connection error: "+err.Error(), err)
}
