package model

import (
	"testing"
)

func TestMissingTargets(t *testing.T) {
	items := []DrawerItem{
		{Label: "app.drawer_item.about", Icon: "info", Target: "about_tile"},
		{Label: "app.drawer_item.disclaimer", Icon: "warning", Target: "disclaimer_tile"},
	}
	tileIDs := []string{"about_tile", "disclaimer_tile"}

	if missing := MissingTargets(items, tileIDs); len(missing) != 0 {
		t.Errorf("MissingTargets() = %v, expected none", missing)
	}
}

func TestMissingTargets_ReportsUnknown(t *testing.T) {
	items := []DrawerItem{
		{Label: "app.drawer_item.about", Icon: "info", Target: "about_tile"},
		{Label: "broken", Icon: "folder", Target: "results_tile"},
		{Label: "broken-again", Icon: "folder", Target: "results_tile"},
	}

	missing := MissingTargets(items, []string{"about_tile"})
	if len(missing) != 1 || missing[0] != "results_tile" {
		t.Errorf("MissingTargets() = %v, expected [results_tile]", missing)
	}
}

func TestMissingTargets_IgnoresEmptyTarget(t *testing.T) {
	// External link rows have no tile target
	items := []DrawerItem{
		{Label: "Source code", Icon: "code", Target: ""},
		{Label: "Bug report", Icon: "bug", Target: "   "},
	}

	if missing := MissingTargets(items, nil); len(missing) != 0 {
		t.Errorf("MissingTargets() = %v, expected none for link-only items", missing)
	}
}

func TestNoticeType(t *testing.T) {
	tests := []struct {
		nt     NoticeType
		severe bool
		valid  bool
	}{
		{NoticeInfo, false, true},
		{NoticeSuccess, false, true},
		{NoticeWarning, true, true},
		{NoticeError, true, true},
		{NoticeType("Fatal"), false, false},
	}

	for _, test := range tests {
		if got := test.nt.IsSevere(); got != test.severe {
			t.Errorf("%s.IsSevere() = %v, expected %v", test.nt, got, test.severe)
		}
		if got := test.nt.Valid(); got != test.valid {
			t.Errorf("%s.Valid() = %v, expected %v", test.nt, got, test.valid)
		}
	}
}

func TestLinksIsEmpty(t *testing.T) {
	if !(Links{}).IsEmpty() {
		t.Error("zero Links should be empty")
	}

	links := Links{Repository: "https://github.com/mosaicui/mosaic"}
	if links.IsEmpty() {
		t.Error("Links with a repository should not be empty")
	}
}
