package platform

// Package platform contains OS integration glue: opening external links in
// the system browser when the toolkit opener is unavailable, and filesystem
// helpers used at startup.
