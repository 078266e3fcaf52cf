package mock

import "github.com/fwojciec/locfeed"

// Compile-time interface verification.
var (
	_ locfeed.LandingParser = (*LandingParser)(nil)
	_ locfeed.DetailParser  = (*DetailParser)(nil)
)

// LandingParser is a mock implementation of locfeed.LandingParser.
type LandingParser struct {
	ParseLandingFn func(html string) ([]*locfeed.Row, error)
}

func (p *LandingParser) ParseLanding(html string) ([]*locfeed.Row, error) {
	return p.ParseLandingFn(html)
}

// DetailParser is a mock implementation of locfeed.DetailParser.
type DetailParser struct {
	ParseDetailFn func(html string) (*locfeed.Detail, error)
}

func (p *DetailParser) ParseDetail(html string) (*locfeed.Detail, error) {
	return p.ParseDetailFn(html)
}
