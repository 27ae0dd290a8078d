package collector

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/Zolyn/Artixide/util"
)

// LocaleGenPath is the libc locale catalog the loader parses.
const LocaleGenPath = "/etc/locale.gen"

// Matches "en_US.UTF-8 UTF-8" and commented-out variants; the leading '#'
// of a disabled locale is part of the locale group and stripped afterwards.
var localeRe = regexp.MustCompile(`^(#?[a-z]+(_[A-Z]+)?(@[a-z]+)?(\.[^\s]+)?)\s([^\s]+)`)

// Locales parses /etc/locale.gen-style lines into the list of languages
// (comment markers stripped) and the distinct set of encodings.
func Locales(path string) (langs, encodings []string, err error) {
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, nil, err
	}
	return parseLocaleLines(lines)
}

func parseLocaleLines(lines []string) (langs, encodings []string, err error) {
	encodingSet := make(map[string]struct{})
	started := false

	for i, line := range lines {
		if line == "" {
			continue
		}
		m := localeRe.FindStringSubmatch(line)
		if m == nil {
			// The file opens with a comment header; once real entries
			// start, every line must match.
			if !started {
				continue
			}
			return nil, nil, fmt.Errorf("malformed locale at line %d: %q", i+1, line)
		}
		started = true

		locale := m[1]
		if locale[0] == '#' {
			locale = locale[1:]
		}
		langs = append(langs, locale)
		encodingSet[m[5]] = struct{}{}
	}

	encodings = make([]string, 0, len(encodingSet))
	for enc := range encodingSet {
		encodings = append(encodings, enc)
	}
	sort.Strings(encodings)

	return langs, encodings, nil
}
