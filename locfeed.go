// Package locfeed extracts structured location records from a
// facility-locator directory: a landing page with a tabular listing and the
// per-location detail pages it links to.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, fs/).
package locfeed

// File names shared by the document source and the output sink.
const (
	// LandingFileName is the landing document inside an input directory.
	LandingFileName = "locations.html"

	// OutputFileName is the newline-delimited output inside an output directory.
	OutputFileName = "locations.parsed.ndjson"
)
