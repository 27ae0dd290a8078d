package collector

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestTimezones(t *testing.T) {
	root := t.TempDir()

	files := []string{
		"Europe/Berlin",
		"America/New_York",
		"UTC",
		"posix/Europe/Berlin",
		"right/Europe/Berlin",
		"posixrules",
		"SECURITY",
		"leapseconds",
		"zone.tab",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	zones, err := Timezones(root)
	if err != nil {
		t.Fatalf("timezones: %v", err)
	}
	sort.Strings(zones)

	want := []string{"America/New_York", "Europe/Berlin", "UTC"}
	if !reflect.DeepEqual(zones, want) {
		t.Fatalf("zones = %v, want %v", zones, want)
	}
}
