package mock

import (
	"context"

	"github.com/fwojciec/locfeed"
)

// Compile-time interface verification.
var (
	_ locfeed.RecordWriter  = (*RecordWriter)(nil)
	_ locfeed.RecordService = (*RecordService)(nil)
)

// RecordWriter is a mock implementation of locfeed.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*locfeed.LocationRecord) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*locfeed.LocationRecord) error {
	return w.WriteRecordsFn(ctx, records)
}

// RecordService is a mock implementation of locfeed.RecordService.
type RecordService struct {
	CreateRunFn   func(ctx context.Context, records []*locfeed.LocationRecord) (*locfeed.Run, error)
	FindRunByIDFn func(ctx context.Context, id string) (*locfeed.Run, error)
	FindRecordsFn func(ctx context.Context, filter locfeed.RecordFilter) ([]*locfeed.ArchivedRecord, error)
}

func (s *RecordService) CreateRun(ctx context.Context, records []*locfeed.LocationRecord) (*locfeed.Run, error) {
	return s.CreateRunFn(ctx, records)
}

func (s *RecordService) FindRunByID(ctx context.Context, id string) (*locfeed.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter locfeed.RecordFilter) ([]*locfeed.ArchivedRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}
