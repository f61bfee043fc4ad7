package model

import "strings"

// DrawerItem pairs a navigation label and icon with the identifier of the
// tile it navigates to. It is a named lookup relation: the item does not own
// the tile, and nothing guarantees at the type level that the target exists.
type DrawerItem struct {
	Label  string // message catalog key for the visible label
	Icon   string // icon identifier rendered next to the label
	Target string // tile identifier this item navigates to
}

// Links holds the external hyperlinks rendered at the bottom of the drawer.
// They are passed through verbatim with no validation beyond scheme checks
// done at open time.
type Links struct {
	Repository    string
	Documentation string
	Issues        string
}

// IsEmpty returns true when no link is configured
func (l Links) IsEmpty() bool {
	return l.Repository == "" && l.Documentation == "" && l.Issues == ""
}

// MissingTargets returns the targets of items that do not correspond to any
// of the given tile identifiers, preserving item order. Duplicate drawer
// targets are reported once.
func MissingTargets(items []DrawerItem, tileIDs []string) []string {
	known := make(map[string]bool, len(tileIDs))
	for _, id := range tileIDs {
		known[id] = true
	}

	var missing []string
	seen := make(map[string]bool)
	for _, item := range items {
		target := strings.TrimSpace(item.Target)
		if target == "" || known[target] || seen[target] {
			continue
		}
		seen[target] = true
		missing = append(missing, target)
	}
	return missing
}
