package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateLinkURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://github.com/mosaicui/mosaic", false},
		{"http://example.com/docs", false},
		{"", true},
		{"   ", true},
		{"ftp://example.com", true},
		{"github.com/mosaicui/mosaic", true},
	}

	for _, test := range tests {
		err := ValidateLinkURL(test.url)
		if (err != nil) != test.wantErr {
			t.Errorf("ValidateLinkURL(%q) error = %v, wantErr %v", test.url, err, test.wantErr)
		}
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "content")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected a directory at %s", dir)
	}

	// Second call on an existing directory must be a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("CreateDirectoryIfNotExists() on existing dir error = %v", err)
	}
}

func TestResolveContentPath(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "about.md")
	if err := os.WriteFile(existing, []byte("# About"), 0644); err != nil {
		t.Fatal(err)
	}

	resolved, ok := ResolveContentPath(existing)
	if !ok {
		t.Errorf("ResolveContentPath(%q) reported missing file", existing)
	}
	if !filepath.IsAbs(resolved) {
		t.Errorf("ResolveContentPath(%q) = %q, expected absolute path", existing, resolved)
	}

	if _, ok := ResolveContentPath(filepath.Join(t.TempDir(), "missing.md")); ok {
		t.Error("ResolveContentPath() reported existing for a missing file")
	}

	if _, ok := ResolveContentPath(""); ok {
		t.Error("ResolveContentPath(\"\") reported existing for empty path")
	}
}
