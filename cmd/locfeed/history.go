package main

import (
	"fmt"

	"github.com/fwojciec/locfeed"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Records == nil {
		fmt.Fprintf(deps.Stderr, "error: history needs an archive. Set LOCFEED_DB or pass --db.\n")
		return locfeed.Errorf(locfeed.EINVALID, "no archive database configured")
	}

	archived, err := deps.Records.FindRecords(deps.Ctx, locfeed.RecordFilter{
		NodeID: &c.NodeID,
		Limit:  c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locfeed.ErrorMessage(err))
		return err
	}

	if len(archived) == 0 {
		fmt.Fprintf(deps.Stderr, "error: node %q was not found in any archived run.\n", c.NodeID)
		return locfeed.Errorf(locfeed.ENOTFOUND, "node %q not found", c.NodeID)
	}

	fmt.Fprintf(deps.Stdout, "History for node %s (%d records):\n\n", c.NodeID, len(archived))

	// Records arrive newest run first; one lookup per run.
	runs := make(map[string]*locfeed.Run)
	for _, a := range archived {
		run, ok := runs[a.RunID]
		if !ok {
			run, err = deps.Records.FindRunByID(deps.Ctx, a.RunID)
			if err != nil {
				return err
			}
			runs[a.RunID] = run
		}

		rec := a.Record
		fmt.Fprintf(deps.Stdout, "  %s  run %s  row %d\n", run.CreatedAt.Format("2006-01-02 15:04:05"), run.ID, a.Position+1)
		fmt.Fprintf(deps.Stdout, "     %s, %s\n", rec.LocationName, rec.Address)
		if rec.Detail != nil {
			fmt.Fprintf(deps.Stdout, "     last updated %s, %d phone numbers, %d contact links\n",
				rec.LastUpdated, len(rec.PhoneNumbers), len(rec.ContactLinks))
		}
	}

	return nil
}
