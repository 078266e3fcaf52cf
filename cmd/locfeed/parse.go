package main

import (
	"fmt"

	"github.com/fwojciec/locfeed"
)

// Run assembles the records, archives them when an archive is configured, and
// writes them. Nothing is written unless every row and detail page parsed
// and the archive accepted the run.
func (c *ParseCmd) Run(deps *Dependencies) error {
	landing := c.Landing
	if landing == "" {
		landing = locfeed.LandingFileName
	}

	records, err := deps.Assembler.AssembleFile(deps.Ctx, landing)
	if err != nil {
		return err
	}

	// The output file is the commit point, so archive first.
	if deps.Records != nil {
		run, err := deps.Records.CreateRun(deps.Ctx, records)
		if err != nil {
			return fmt.Errorf("archive records: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Archived run %s\n", run.ID)
	}

	if err := deps.Writer.WriteRecords(deps.Ctx, records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	var detailed int
	for _, rec := range records {
		if rec.HasDetail() {
			detailed++
		}
	}
	fmt.Fprintf(deps.Stdout, "Parsed %d locations (%d with detail pages)\n", len(records), detailed)

	return nil
}
