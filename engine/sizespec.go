package engine

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// SpecAll is the size text meaning "consume the entire free region".
// The editor resolves it against the selected region; ParseSizeSpec never
// sees it.
const SpecAll = "*"

// ParseSizeSpec converts user size text into a sector count.
//
// Text ending in "s" or "S" is a literal sector count. Anything else is a
// byte quantity with an optional binary or decimal unit suffix ("512M",
// "2GiB", "4096"), converted to sectors by integer division; a remainder
// smaller than one sector is discarded.
//
// A zero result yields ErrInvalidSize; unparsable text yields
// *ParseSizeError.
func ParseSizeSpec(text string, sectorSize uint64) (uint64, error) {
	text = strings.TrimSpace(text)

	if n := len(text); n > 1 && (text[n-1] == 's' || text[n-1] == 'S') {
		sectors, err := strconv.ParseUint(text[:n-1], 10, 64)
		if err != nil {
			return 0, &ParseSizeError{Text: text, Err: err}
		}
		if sectors == 0 {
			return 0, ErrInvalidSize
		}
		return sectors, nil
	}

	bytes, err := humanize.ParseBytes(text)
	if err != nil {
		return 0, &ParseSizeError{Text: text, Err: err}
	}

	sectors := bytes / sectorSize
	if sectors == 0 {
		return 0, ErrInvalidSize
	}
	return sectors, nil
}
