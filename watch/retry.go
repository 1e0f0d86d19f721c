package watch

import (
	"context"
	"time"

	"github.com/fwojciec/plfhelper"
)

// DefaultRetryDelays returns the backoff delays for snapshot retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// SnapshotWithRetryDelays takes a snapshot, retrying after each delay on
// failure. Application errors such as a missing file are returned at once
// since retrying cannot fix them.
func SnapshotWithRetryDelays(ctx context.Context, src plfhelper.SnapshotSource, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := src.Snapshot(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if plfhelper.ErrorCode(err) != plfhelper.EINTERNAL || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
