// Package fs provides file-based document loading and record output.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/locfeed"
	"golang.org/x/net/html/charset"
)

// Ensure DocumentSource implements locfeed.DocumentSource at compile time.
var _ locfeed.DocumentSource = (*DocumentSource)(nil)

// DocumentSource loads HTML documents from a directory of downloaded pages.
// Content is decoded to UTF-8 using the document's BOM or meta charset.
type DocumentSource struct {
	dir string
}

// NewDocumentSource creates a DocumentSource rooted at dir.
func NewDocumentSource(dir string) *DocumentSource {
	return &DocumentSource{dir: dir}
}

// Load reads the document named id from the source directory.
// The id must be a local path; it may not escape the directory.
func (s *DocumentSource) Load(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if id == "" || !filepath.IsLocal(id) {
		return "", locfeed.Errorf(locfeed.EINVALID, "document id %q is not a local path", id)
	}
	path := filepath.Join(s.dir, id)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", locfeed.Errorf(locfeed.ENOTFOUND, "document %q not found in %s", id, s.dir)
	} else if err != nil {
		return "", locfeed.Errorf(locfeed.ERETRIEVAL, "open %s: %v", path, err)
	}
	defer f.Close()

	r, err := charset.NewReader(f, "text/html")
	if err != nil {
		return "", locfeed.Errorf(locfeed.ERETRIEVAL, "decode %s: %v", path, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", locfeed.Errorf(locfeed.ERETRIEVAL, "read %s: %v", path, err)
	}
	return string(data), nil
}
