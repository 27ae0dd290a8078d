package collector

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// ZoneinfoDir is the tz database root.
const ZoneinfoDir = "/usr/share/zoneinfo"

// Timezones walks the tz database under root and returns Area/City names.
// The posix and right variant trees are skipped, as are the bookkeeping
// files that live beside the zones.
func Timezones(root string) ([]string, error) {
	var zones []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if name == "posix" || name == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.Contains(name, ".") {
			return nil
		}
		switch name {
		case "posixrules", "SECURITY", "leapseconds":
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		zones = append(zones, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return zones, nil
}
