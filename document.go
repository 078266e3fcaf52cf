package locfeed

import "context"

// DocumentSource returns the raw content of a document by identifier.
// Implementations may read from disk or any other store.
type DocumentSource interface {
	// Load returns the document content.
	// Returns ENOTFOUND if the document does not exist.
	Load(ctx context.Context, id string) (string, error)
}

// ResolveFunc maps a landing table href to the identifier of its detail
// document. It must be deterministic and collision-free.
type ResolveFunc func(href string) (string, error)

// Progress reports a completed detail page during assembly.
type Progress struct {
	Href      string
	Completed int
	Total     int
}

// ProgressFunc is called as detail pages are processed.
type ProgressFunc func(Progress)
