package locfeed

// LandingParser extracts rows from the landing document.
type LandingParser interface {
	// ParseLanding validates the table layout and returns one row per table
	// body row, in document order.
	// Returns ECHANGED if the table or its expected columns are missing.
	ParseLanding(html string) ([]*Row, error)
}

// DetailParser extracts the detail fragment from a location page.
type DetailParser interface {
	// ParseDetail returns the fragment for a single detail document.
	// Returns ENOID, ENOSECTION or EBADLINK when the page does not have the
	// expected structure.
	ParseDetail(html string) (*Detail, error)
}
