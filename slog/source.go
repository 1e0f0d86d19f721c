package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/plfhelper"
)

// Ensure LoggingSource implements plfhelper.SnapshotSource.
var _ plfhelper.SnapshotSource = (*LoggingSource)(nil)

// LoggingSource wraps a SnapshotSource with debug logging.
type LoggingSource struct {
	next   plfhelper.SnapshotSource
	name   string
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource. name identifies the
// source in log output, e.g. a file path or URL.
func NewLoggingSource(next plfhelper.SnapshotSource, name string, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, name: name, logger: logger}
}

// Snapshot logs the capture and delegates to the wrapped source.
func (s *LoggingSource) Snapshot(ctx context.Context) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("snapshot",
			"source", s.name,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Snapshot(ctx)
}
