package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lexso"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 5s, 15s, 30s.
// The dictionary site throttles bursts for several seconds at a time.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second}
}

// FetchWithRetry fetches url, retrying failed attempts after each of delays.
// Missing pages are not retried.
func FetchWithRetry(ctx context.Context, url string, fetcher lexso.Fetcher, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if lexso.ErrorCode(err) == lexso.ENOTFOUND || attempt >= maxAttempts-1 {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger.Debug("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
