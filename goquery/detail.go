package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/locfeed"
)

// CitationProperty identifies the meta element holding the stable id.
const CitationProperty = "ga:citation:metadata"

var (
	citationMeta = cascadia.MustCompile(`meta[property="` + CitationProperty + `"]`)
	mainContent  = cascadia.MustCompile("#main-content")
	phoneSection = cascadia.MustCompile(".contact-phone-numbers")
	phoneEntry   = cascadia.MustCompile(".contact-phone")
	phoneLabel   = cascadia.MustCompile(".contact-phone__label")
	contactLink  = cascadia.MustCompile(".contact__link")
	anchor       = cascadia.MustCompile("a")
)

// Ensure DetailParser implements locfeed.DetailParser at compile time.
var _ locfeed.DetailParser = (*DetailParser)(nil)

// DetailParser extracts the stable id, phone numbers and contact links from
// a location's detail page.
type DetailParser struct{}

// NewDetailParser creates a new DetailParser.
func NewDetailParser() *DetailParser {
	return &DetailParser{}
}

// ParseDetail returns the detail fragment for a single page.
func (p *DetailParser) ParseDetail(html string) (*locfeed.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locfeed.Errorf(locfeed.EINVALID, "failed to parse HTML: %v", err)
	}

	detail, err := parseCitation(doc)
	if err != nil {
		return nil, err
	}

	content := doc.FindMatcher(mainContent).First()
	if content.Length() == 0 {
		return nil, locfeed.Errorf(locfeed.ENOSECTION, "main content block not found, detail page layout may have changed")
	}

	detail.PhoneNumbers = append(detail.PhoneNumbers, parsePhoneNumbers(content)...)

	links, err := parseContactLinks(content)
	if err != nil {
		return nil, err
	}
	detail.ContactLinks = append(detail.ContactLinks, links...)

	return detail, nil
}

func parseCitation(doc *goquery.Document) (*locfeed.Detail, error) {
	meta := doc.FindMatcher(citationMeta).First()
	if meta.Length() == 0 {
		return nil, locfeed.Errorf(locfeed.ENOID, "%q meta tag not found, this element is used for a stable id", CitationProperty)
	}

	nodeID, ok := meta.Attr("internal_url")
	if !ok {
		return nil, locfeed.Errorf(locfeed.ENOID, "%q meta tag has no internal_url attribute", CitationProperty)
	}
	lastUpdated, ok := meta.Attr("last_updated")
	if !ok {
		return nil, locfeed.Errorf(locfeed.ENOID, "%q meta tag has no last_updated attribute", CitationProperty)
	}

	return locfeed.NewDetail(nodeID, lastUpdated), nil
}

// parsePhoneNumbers reads phone entries from the first phone section.
// Entries missing a link or a label keep whatever is present.
func parsePhoneNumbers(content *goquery.Selection) []locfeed.PhoneNumber {
	var phones []locfeed.PhoneNumber
	section := content.FindMatcher(phoneSection).First()
	section.FindMatcher(phoneEntry).Each(func(_ int, entry *goquery.Selection) {
		var phone locfeed.PhoneNumber
		if href, ok := entry.FindMatcher(anchor).First().Attr("href"); ok {
			phone.Href = &href
		}
		if label := entry.FindMatcher(phoneLabel).First(); label.Length() > 0 {
			text := strings.TrimSpace(label.Text())
			phone.Label = &text
		}
		phones = append(phones, phone)
	})
	return phones
}

// parseContactLinks reads every anchor nested in a contact link element.
// An anchor without an href fails the page.
func parseContactLinks(content *goquery.Selection) ([]locfeed.ContactLink, error) {
	var links []locfeed.ContactLink
	var linkErr error
	content.FindMatcher(contactLink).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		el.FindMatcher(anchor).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			label := strings.TrimSpace(a.Text())
			href, ok := a.Attr("href")
			if !ok {
				linkErr = locfeed.Errorf(locfeed.EBADLINK, "contact link %q has no href", label)
				return false
			}
			links = append(links, locfeed.ContactLink{Href: href, Label: label})
			return true
		})
		return linkErr == nil
	})
	if linkErr != nil {
		return nil, linkErr
	}
	return links, nil
}
