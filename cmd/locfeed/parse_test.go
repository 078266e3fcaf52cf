package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/locfeed"
	"github.com/fwojciec/locfeed/assemble"
	main "github.com/fwojciec/locfeed/cmd/locfeed"
	"github.com/fwojciec/locfeed/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowAssembler(rows []*locfeed.Row) *assemble.Assembler {
	return &assemble.Assembler{
		Landing: &mock.LandingParser{
			ParseLandingFn: func(string) ([]*locfeed.Row, error) {
				return rows, nil
			},
		},
		Documents: &mock.DocumentSource{
			LoadFn: func(_ context.Context, id string) (string, error) {
				return "", nil
			},
		},
	}
}

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("archives records then writes them", func(t *testing.T) {
		t.Parallel()

		// Given an assembler producing one record
		rec := locfeed.NewLocationRecord("A", "B", "C")
		var calls []string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Assembler: rowAssembler([]*locfeed.Row{{Record: rec}}),
			Writer: &mock.RecordWriter{
				WriteRecordsFn: func(_ context.Context, records []*locfeed.LocationRecord) error {
					calls = append(calls, "write")
					assert.Equal(t, []*locfeed.LocationRecord{rec}, records)
					return nil
				},
			},
			Records: &mock.RecordService{
				CreateRunFn: func(_ context.Context, records []*locfeed.LocationRecord) (*locfeed.Run, error) {
					calls = append(calls, "archive")
					return &locfeed.Run{ID: "run-1", RecordCount: len(records)}, nil
				},
			},
		}

		// When the command runs
		err := (&main.ParseCmd{}).Run(deps)

		// Then the run is archived before the output is committed
		require.NoError(t, err)
		assert.Equal(t, []string{"archive", "write"}, calls)
		assert.Contains(t, stdout.String(), "Archived run run-1")
		assert.Contains(t, stdout.String(), "Parsed 1 locations (0 with detail pages)")
	})

	t.Run("does not write when assembly fails", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Assembler: &assemble.Assembler{
				Documents: &mock.DocumentSource{
					LoadFn: func(_ context.Context, id string) (string, error) {
						return "", locfeed.Errorf(locfeed.ENOTFOUND, "document %q not found", id)
					},
				},
			},
			Writer: &mock.RecordWriter{
				WriteRecordsFn: func(context.Context, []*locfeed.LocationRecord) error {
					t.Fatal("WriteRecords should not be called")
					return nil
				},
			},
		}

		err := (&main.ParseCmd{Landing: "index.html"}).Run(deps)

		assert.Equal(t, locfeed.ENOTFOUND, locfeed.ErrorCode(err))
		assert.Contains(t, err.Error(), "index.html")
	})

	t.Run("does not write when archiving fails", func(t *testing.T) {
		t.Parallel()

		// Given an archive that rejects the run
		archiveErr := errors.New("database is locked")
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Assembler: rowAssembler([]*locfeed.Row{{Record: locfeed.NewLocationRecord("A", "B", "C")}}),
			Writer: &mock.RecordWriter{
				WriteRecordsFn: func(context.Context, []*locfeed.LocationRecord) error {
					t.Fatal("WriteRecords should not be called")
					return nil
				},
			},
			Records: &mock.RecordService{
				CreateRunFn: func(context.Context, []*locfeed.LocationRecord) (*locfeed.Run, error) {
					return nil, archiveErr
				},
			},
		}

		// When the command runs
		err := (&main.ParseCmd{}).Run(deps)

		// Then the failure is returned and no output is committed
		assert.ErrorIs(t, err, archiveErr)
	})

	t.Run("returns write failure", func(t *testing.T) {
		t.Parallel()

		writeErr := errors.New("disk full")
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Assembler: rowAssembler(nil),
			Writer: &mock.RecordWriter{
				WriteRecordsFn: func(context.Context, []*locfeed.LocationRecord) error {
					return writeErr
				},
			},
		}

		err := (&main.ParseCmd{}).Run(deps)

		assert.ErrorIs(t, err, writeErr)
	})
}
