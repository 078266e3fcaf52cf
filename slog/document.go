// Package slog provides logging decorators for locfeed services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locfeed"
)

// Ensure LoggingDocumentSource implements locfeed.DocumentSource.
var _ locfeed.DocumentSource = (*LoggingDocumentSource)(nil)

// LoggingDocumentSource wraps a DocumentSource with debug logging.
type LoggingDocumentSource struct {
	next   locfeed.DocumentSource
	logger *slog.Logger
}

// NewLoggingDocumentSource creates a new LoggingDocumentSource.
func NewLoggingDocumentSource(next locfeed.DocumentSource, logger *slog.Logger) *LoggingDocumentSource {
	return &LoggingDocumentSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the operation.
func (s *LoggingDocumentSource) Load(ctx context.Context, id string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"id", id,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.Error("load", append(attrs, "code", locfeed.ErrorCode(err), "err", err)...)
			return
		}
		s.logger.Debug("load", attrs...)
	}(time.Now())
	return s.next.Load(ctx, id)
}
