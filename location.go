package locfeed

// LocationRecord is a single facility assembled from a landing table row and,
// when the row links to one, its detail page.
//
// The first three JSON keys match the column labels of the landing table.
// Detail-derived keys are omitted entirely when Detail is nil.
type LocationRecord struct {
	LocationName string            `json:"Location Name"`
	County       string            `json:"County"`
	Address      string            `json:"Address"`
	AddressParts map[string]string `json:"address-parts"`

	*Detail
}

// NewLocationRecord returns a record with an empty, non-nil AddressParts map.
func NewLocationRecord(name, county, address string) *LocationRecord {
	return &LocationRecord{
		LocationName: name,
		County:       county,
		Address:      address,
		AddressParts: make(map[string]string),
	}
}

// Merge folds a detail fragment into the record. A nil detail is a no-op.
func (r *LocationRecord) Merge(d *Detail) {
	if d == nil {
		return
	}
	r.Detail = d
}

// HasDetail reports whether a detail fragment has been merged.
func (r *LocationRecord) HasDetail() bool {
	return r.Detail != nil
}

// Detail is the fragment extracted from a location's detail page.
type Detail struct {
	// NodeID is the stable id that survives re-crawls.
	NodeID string `json:"node-id"`

	// LastUpdated is copied verbatim from the page; it is never parsed.
	LastUpdated string `json:"last-updated"`

	PhoneNumbers []PhoneNumber `json:"phone-numbers"`
	ContactLinks []ContactLink `json:"contact-links"`
}

// NewDetail returns a detail with empty, non-nil phone and link slices so they
// serialize as [] rather than null.
func NewDetail(nodeID, lastUpdated string) *Detail {
	return &Detail{
		NodeID:       nodeID,
		LastUpdated:  lastUpdated,
		PhoneNumbers: []PhoneNumber{},
		ContactLinks: []ContactLink{},
	}
}

// PhoneNumber is a phone entry. Either field may be missing from the page.
type PhoneNumber struct {
	Href  *string `json:"href,omitempty"`
	Label *string `json:"label,omitempty"`
}

// ContactLink is an external reference listed on a detail page.
type ContactLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Row is a landing table row: the partial record plus the href of its
// detail page. Href is empty when the row has no link.
type Row struct {
	Record *LocationRecord
	Href   string
}
