package collector

import (
	"reflect"
	"testing"
)

func TestParseLocaleLines(t *testing.T) {
	lines := []string{
		"# Configuration file for locale-gen",
		"#",
		"",
		"#aa_DJ.UTF-8 UTF-8",
		"en_US.UTF-8 UTF-8",
		"#ar_SA ISO-8859-6",
		"#ca_ES@valencia ISO-8859-15",
	}

	langs, encodings, err := parseLocaleLines(lines)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	wantLangs := []string{"aa_DJ.UTF-8", "en_US.UTF-8", "ar_SA", "ca_ES@valencia"}
	if !reflect.DeepEqual(langs, wantLangs) {
		t.Fatalf("langs = %v, want %v", langs, wantLangs)
	}

	wantEnc := []string{"ISO-8859-15", "ISO-8859-6", "UTF-8"}
	if !reflect.DeepEqual(encodings, wantEnc) {
		t.Fatalf("encodings = %v, want %v", encodings, wantEnc)
	}
}

func TestParseLocaleLinesMalformed(t *testing.T) {
	lines := []string{
		"en_US.UTF-8 UTF-8",
		"THIS IS NOT A LOCALE",
	}

	if _, _, err := parseLocaleLines(lines); err == nil {
		t.Fatal("parse succeeded on malformed entry, want error")
	}
}

func TestParseLocaleLinesHeaderOnly(t *testing.T) {
	lines := []string{
		"# Configuration file for locale-gen",
		"# lists of locales that are to be generated.",
		"",
	}

	langs, encodings, err := parseLocaleLines(lines)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(langs) != 0 || len(encodings) != 0 {
		t.Fatalf("got %v / %v from header-only file, want none", langs, encodings)
	}
}
