// Package assemble merges landing table rows with their detail pages into
// location records.
package assemble

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/locfeed"
	"golang.org/x/sync/errgroup"
)

// Assembler orchestrates the landing and detail extractors.
type Assembler struct {
	Landing   locfeed.LandingParser
	Details   locfeed.DetailParser
	Documents locfeed.DocumentSource
	Resolve   locfeed.ResolveFunc

	// Concurrency bounds simultaneous detail tasks. Zero or less runs one
	// task per linked row at once.
	Concurrency int

	// Progress, if set, is called after each detail page is merged.
	// It may be called from multiple goroutines.
	Progress locfeed.ProgressFunc
}

// AssembleFile loads the landing document by id and assembles its records.
func (a *Assembler) AssembleFile(ctx context.Context, id string) ([]*locfeed.LocationRecord, error) {
	html, err := a.Documents.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load landing %s: %w", id, err)
	}
	return a.Assemble(ctx, html)
}

// Assemble parses the landing document, merges every linked detail page into
// its row's record and returns the records in table order.
// The first failing detail page aborts assembly and no records are returned.
func (a *Assembler) Assemble(ctx context.Context, landingHTML string) ([]*locfeed.LocationRecord, error) {
	rows, err := a.Landing.ParseLanding(landingHTML)
	if err != nil {
		return nil, err
	}

	var total int
	for _, row := range rows {
		if row.Href != "" {
			total++
		}
	}
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	if a.Concurrency > 0 {
		g.SetLimit(a.Concurrency)
	}

	for i, row := range rows {
		if row.Href == "" {
			continue
		}
		g.Go(func() error {
			detail, err := a.detail(gctx, row.Href)
			if err != nil {
				return fmt.Errorf("row %d (%s): %w", i, row.Href, err)
			}
			// Each task owns exactly one row's record.
			row.Record.Merge(detail)

			if a.Progress != nil {
				a.Progress(locfeed.Progress{
					Href:      row.Href,
					Completed: int(completed.Add(1)),
					Total:     total,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]*locfeed.LocationRecord, len(rows))
	for i, row := range rows {
		records[i] = row.Record
	}
	return records, nil
}

// detail resolves, loads and parses the detail page behind href.
func (a *Assembler) detail(ctx context.Context, href string) (*locfeed.Detail, error) {
	id, err := a.Resolve(href)
	if err != nil {
		return nil, err
	}

	html, err := a.Documents.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	return a.Details.ParseDetail(html)
}
