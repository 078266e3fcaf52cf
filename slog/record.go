package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locfeed"
)

// Compile-time interface verification.
var (
	_ locfeed.RecordWriter  = (*LoggingRecordWriter)(nil)
	_ locfeed.RecordService = (*LoggingRecordService)(nil)
)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   locfeed.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next locfeed.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []*locfeed.LocationRecord) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}

// LoggingRecordService wraps a RecordService with logging.
type LoggingRecordService struct {
	next   locfeed.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next locfeed.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the new run.
func (s *LoggingRecordService) CreateRun(ctx context.Context, records []*locfeed.LocationRecord) (run *locfeed.Run, err error) {
	defer func(begin time.Time) {
		var id string
		if run != nil {
			id = run.ID
		}
		s.logger.Info("create run",
			"run", id,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, records)
}

// FindRunByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRunByID(ctx context.Context, id string) (*locfeed.Run, error) {
	return s.next.FindRunByID(ctx, id)
}

// FindRecords delegates to the wrapped service and logs the lookup.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter locfeed.RecordFilter) (records []*locfeed.ArchivedRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}
