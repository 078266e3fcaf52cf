package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/locfeed"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ locfeed.RecordService = (*RecordService)(nil)

// RecordService implements locfeed.RecordService using SQLite.
// Records are stored as their JSON encoding alongside the columns used for
// lookup.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRun stores the records as a new run in a single transaction.
func (s *RecordService) CreateRun(ctx context.Context, records []*locfeed.LocationRecord) (*locfeed.Run, error) {
	for i, rec := range records {
		if rec == nil {
			return nil, locfeed.Errorf(locfeed.EINVALID, "record %d is nil", i)
		}
	}

	run := &locfeed.Run{
		ID:          uuid.New().String(),
		RecordCount: len(records),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, record_count, created_at)
		VALUES (?, ?, ?)
	`, run.ID, run.RecordCount, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, position, node_id, location_name, data)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to encode record %d: %w", i, err)
		}

		var nodeID string
		if rec.HasDetail() {
			nodeID = rec.NodeID
		}

		if _, err := stmt.ExecContext(ctx, run.ID, i, nodeID, rec.LocationName, string(data)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return run, nil
}

// FindRunByID retrieves a run by ID.
func (s *RecordService) FindRunByID(ctx context.Context, id string) (*locfeed.Run, error) {
	var run locfeed.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, record_count, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.RecordCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, locfeed.Errorf(locfeed.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// FindRecords retrieves archived records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter locfeed.RecordFilter) ([]*locfeed.ArchivedRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT rec.run_id, rec.position, rec.data
		FROM records rec
		JOIN runs r ON r.id = rec.run_id
		WHERE 1=1`)

	if filter.RunID != nil {
		query.WriteString(" AND rec.run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.NodeID != nil {
		query.WriteString(" AND rec.node_id = ?")
		args = append(args, *filter.NodeID)
	}

	// rowid preserves insertion order for runs created within the same second.
	query.WriteString(" ORDER BY r.rowid DESC, rec.position ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*locfeed.ArchivedRecord
	for rows.Next() {
		var ar locfeed.ArchivedRecord
		var data string

		if err := rows.Scan(&ar.RunID, &ar.Position, &data); err != nil {
			return nil, err
		}

		ar.Record = &locfeed.LocationRecord{}
		if err := json.Unmarshal([]byte(data), ar.Record); err != nil {
			return nil, fmt.Errorf("failed to decode record %d of run %s: %w", ar.Position, ar.RunID, err)
		}
		records = append(records, &ar)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
