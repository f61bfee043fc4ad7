package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mosaicui/mosaic/internal/model"
)

// Default manifest values
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultAboutPath    = "about.md"
	DefaultInitialTile  = "about_tile"

	// EnvPrefix namespaces the environment overrides (MOSAIC_ABOUT_PATH, ...)
	EnvPrefix = "MOSAIC_"
)

// Config file names probed in the working directory when no explicit path is given
var manifestFileNames = []string{"mosaic.yaml", "mosaic.yml"}

// Manifest is the static app configuration: window geometry, content
// locations, and the external links passed through verbatim to the drawer.
type Manifest struct {
	WindowWidth  int    `koanf:"window_width"`
	WindowHeight int    `koanf:"window_height"`
	AboutPath    string `koanf:"about_path"`
	InitialTile  string `koanf:"initial_tile"`
	Language     string `koanf:"language"`

	Links struct {
		Repository    string `koanf:"repository"`
		Documentation string `koanf:"documentation"`
		Issues        string `koanf:"issues"`
	} `koanf:"links"`
}

// NavLinks returns the manifest links as a model record
func (m *Manifest) NavLinks() model.Links {
	return model.Links{
		Repository:    m.Links.Repository,
		Documentation: m.Links.Documentation,
		Issues:        m.Links.Issues,
	}
}

// findManifestFile finds the manifest file to use.
// Priority: explicit path > mosaic.yaml > mosaic.yml
func findManifestFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range manifestFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadManifest loads the app manifest.
// Precedence (highest to lowest): env vars > manifest file > defaults.
func LoadManifest(cfgFile string) (*Manifest, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"window_width":        DefaultWindowWidth,
		"window_height":       DefaultWindowHeight,
		"about_path":          DefaultAboutPath,
		"initial_tile":        DefaultInitialTile,
		"language":            DefaultLanguage,
		"links.repository":    "https://github.com/mosaicui/mosaic",
		"links.documentation": "https://github.com/mosaicui/mosaic/wiki",
		"links.issues":        "https://github.com/mosaicui/mosaic/issues",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load manifest file when present
	manifestFile := findManifestFile(cfgFile)
	if manifestFile != "" {
		if err := k.Load(file.Provider(manifestFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading manifest file %s: %w", manifestFile, err)
		}
	}

	// 3. Load environment variables (MOSAIC_ prefix)
	// Transform: MOSAIC_LINKS_REPOSITORY -> links.repository
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if after, ok := strings.CutPrefix(key, "links_"); ok {
			return "links." + after
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal into Manifest struct
	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("unable to decode manifest: %w", err)
	}

	if m.WindowWidth <= 0 {
		m.WindowWidth = DefaultWindowWidth
	}
	if m.WindowHeight <= 0 {
		m.WindowHeight = DefaultWindowHeight
	}
	if m.InitialTile == "" {
		m.InitialTile = DefaultInitialTile
	}

	return &m, nil
}
