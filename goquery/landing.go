// Package goquery implements the landing and detail page extractors using
// CSS selectors over a parsed document tree.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/locfeed"
)

// landingColumns are the leading header labels of the landing table.
// Cells are read by position, so order matters as much as presence.
var landingColumns = [...]string{"Location Name", "County", "Address"}

// LandingColumns returns the header labels the landing table must start with.
func LandingColumns() []string {
	return slices.Clone(landingColumns[:])
}

var (
	landingTable   = cascadia.MustCompile("#datatable")
	landingHeaders = cascadia.MustCompile("#datatable > thead > tr > th")
	landingRows    = cascadia.MustCompile("#datatable > tbody > tr")
	tableCell      = cascadia.MustCompile("td")
	addressPart    = cascadia.MustCompile("span[class]")
	rowLink        = cascadia.MustCompile("a[href]")
)

// Ensure LandingParser implements locfeed.LandingParser at compile time.
var _ locfeed.LandingParser = (*LandingParser)(nil)

// LandingParser extracts rows from the landing document's location table.
type LandingParser struct{}

// NewLandingParser creates a new LandingParser.
func NewLandingParser() *LandingParser {
	return &LandingParser{}
}

// ParseLanding validates the table header and returns one row per body row.
// Any structural problem fails the whole document; no rows are returned.
func (p *LandingParser) ParseLanding(html string) ([]*locfeed.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locfeed.Errorf(locfeed.EINVALID, "failed to parse HTML: %v", err)
	}

	if doc.FindMatcher(landingTable).Length() == 0 {
		return nil, locfeed.Errorf(locfeed.ECHANGED, "datatable not found, landing page layout may have changed")
	}

	if err := checkHeaders(doc.FindMatcher(landingHeaders)); err != nil {
		return nil, err
	}

	var rows []*locfeed.Row
	var rowErr error
	doc.FindMatcher(landingRows).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		row, err := parseRow(i, tr)
		if err != nil {
			rowErr = err
			return false
		}
		rows = append(rows, row)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rows, nil
}

// checkHeaders verifies the first header cells match landingColumns in order,
// case-insensitively and as substrings of the cell text.
func checkHeaders(headers *goquery.Selection) error {
	for i, column := range landingColumns {
		if i >= headers.Length() {
			return changedColumn(column)
		}
		text := strings.ToLower(strings.TrimSpace(headers.Eq(i).Text()))
		if !strings.Contains(text, strings.ToLower(column)) {
			return changedColumn(column)
		}
	}
	return nil
}

func changedColumn(column string) error {
	return locfeed.Errorf(locfeed.ECHANGED, "datatable has changed column header %q, column order may have changed", column)
}

func parseRow(i int, tr *goquery.Selection) (*locfeed.Row, error) {
	cells := tr.FindMatcher(tableCell)
	if cells.Length() < len(landingColumns) {
		return nil, locfeed.Errorf(locfeed.ECHANGED, "datatable row %d has %d cells, expected at least %d", i, cells.Length(), len(landingColumns))
	}

	address := cells.Eq(2)
	rec := locfeed.NewLocationRecord(
		strings.TrimSpace(cells.Eq(0).Text()),
		strings.TrimSpace(cells.Eq(1).Text()),
		strings.TrimSpace(address.Text()),
	)

	// Address cells carry semantic spans such as locality or postal-code.
	address.FindMatcher(addressPart).Each(func(_ int, span *goquery.Selection) {
		class, _ := span.Attr("class")
		key := strings.Join(strings.Fields(class), " ")
		if key == "" {
			return
		}
		rec.AddressParts[key] = strings.TrimSpace(span.Text())
	})

	row := &locfeed.Row{Record: rec}
	if href, ok := tr.FindMatcher(rowLink).First().Attr("href"); ok {
		// An empty href would read as "no detail page" downstream.
		if strings.TrimSpace(href) == "" {
			return nil, locfeed.Errorf(locfeed.EBADLINK, "datatable row %d links to an empty href", i)
		}
		row.Href = href
	}
	return row, nil
}
