package collector

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// KeymapDir is where console keymaps live on Artix/Arch systems.
const KeymapDir = "/usr/share/kbd/keymaps"

// KeyboardLayouts returns the sorted names of all console keymaps under
// root (each a *.map.gz file, name stripped of the suffix).
func KeyboardLayouts(root string) ([]string, error) {
	var layouts []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name, ok := strings.CutSuffix(d.Name(), ".map.gz")
		if !ok {
			return nil
		}
		layouts = append(layouts, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(layouts)
	return layouts, nil
}
