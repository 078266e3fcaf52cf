package fs

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/locfeed"
)

// Ensure RecordWriter implements locfeed.RecordWriter at compile time.
var _ locfeed.RecordWriter = (*RecordWriter)(nil)

// RecordWriter writes records as newline-delimited JSON.
// Records are written to a temporary file in the output directory which is
// renamed into place only after every record was written.
type RecordWriter struct {
	dir  string
	name string
}

// NewRecordWriter creates a RecordWriter that writes locfeed.OutputFileName
// inside dir.
func NewRecordWriter(dir string) *RecordWriter {
	return &RecordWriter{
		dir:  dir,
		name: locfeed.OutputFileName,
	}
}

// Path returns the final output file path.
func (w *RecordWriter) Path() string {
	return filepath.Join(w.dir, w.name)
}

// WriteRecords writes one JSON object per record, one record per line.
func (w *RecordWriter) WriteRecords(ctx context.Context, records []*locfeed.LocationRecord) (err error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.dir, w.name+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Encode terminates each object with a newline.
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), w.Path())
}
