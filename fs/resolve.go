package fs

import (
	"fmt"
	"strings"

	"github.com/fwojciec/locfeed"
)

// Ensure FileNameForURL is a locfeed.ResolveFunc at compile time.
var _ locfeed.ResolveFunc = FileNameForURL

// FileNameForURL converts a detail page href into the flat file name the page
// was saved under.
// Example: /locations/clinic_a → _2flocations_2fclinic_5fa
//
// Letters, digits, '.' and '-' are kept; every other byte becomes '_'
// followed by two hex digits. The mapping is injective, so distinct hrefs
// never share a file, and the result never contains a path separator.
func FileNameForURL(href string) (string, error) {
	if href == "" {
		return "", locfeed.Errorf(locfeed.EINVALID, "empty href")
	}

	var b strings.Builder
	for i := 0; i < len(href); i++ {
		c := href[i]
		if isSafe(c) && !(i == 0 && c == '.') {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "_%02x", c)
	}
	return b.String(), nil
}

func isSafe(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '.' || c == '-'
}
