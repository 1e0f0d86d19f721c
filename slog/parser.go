// Package slog decorates plfhelper services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/plfhelper"
)

// Ensure LoggingParser implements plfhelper.PageParser.
var _ plfhelper.PageParser = (*LoggingParser)(nil)

// LoggingParser wraps a PageParser and logs every parse outcome.
type LoggingParser struct {
	next   plfhelper.PageParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next plfhelper.PageParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParsePage delegates to the wrapped parser. Recognized pages are logged
// at info level, everything else at debug.
func (p *LoggingParser) ParsePage(text string, values []float64, catalog *plfhelper.ProductCatalog) (outcome *plfhelper.ParseOutcome, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(text),
			"duration", time.Since(begin),
		}
		level := slog.LevelDebug
		if outcome != nil {
			attrs = append(attrs, "kind", outcome.Kind.String(), "changed", outcome.Changed)
			if outcome.Product != "" {
				attrs = append(attrs, "product", outcome.Product)
			}
			if outcome.Kind != plfhelper.PageUnknown {
				level = slog.LevelInfo
			}
		}
		if err != nil {
			attrs = append(attrs, "err", err)
			level = slog.LevelWarn
		}
		p.logger.Log(context.Background(), level, "parse", attrs...)
	}(time.Now())
	return p.next.ParsePage(text, values, catalog)
}
