package locfeed

import (
	"context"
	"time"
)

// RecordWriter persists the final ordered collection of records.
type RecordWriter interface {
	// WriteRecords writes every record in order. Nothing is visible to
	// readers unless the whole collection was written.
	WriteRecords(ctx context.Context, records []*LocationRecord) error
}

// Run is one archived assembly of the directory.
type Run struct {
	ID          string    `json:"id"`
	RecordCount int       `json:"recordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ArchivedRecord is a record stored as part of a run.
type ArchivedRecord struct {
	RunID    string          `json:"runId"`
	Position int             `json:"position"`
	Record   *LocationRecord `json:"record"`
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	RunID  *string `json:"runId"`
	NodeID *string `json:"nodeId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService archives assembled records so locations can be correlated
// across runs by their stable id.
type RecordService interface {
	// CreateRun stores the records as a new run.
	CreateRun(ctx context.Context, records []*LocationRecord) (*Run, error)

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRecords retrieves archived records matching the filter, newest run
	// first and in table order within a run.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*ArchivedRecord, error)
}
