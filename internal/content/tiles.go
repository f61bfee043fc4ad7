package content

import (
	_ "embed"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/ui"
)

//go:embed disclaimer.md
var disclaimerMarkdown string

// Tile identifiers used as navigation targets
const (
	AboutTileID      = "about_tile"
	DisclaimerTileID = "disclaimer_tile"
)

// NewAboutTile builds the about tile from the markdown file at path. A
// missing or unreadable file yields the catalog's placeholder body instead
// of failing the assembly.
func NewAboutTile(path string, tr *locale.Translator) *ui.Tile {
	body := readMarkdown(path, tr)
	return ui.NewTile(AboutTileID, tr.T(locale.KeyTileAboutTitle), renderMarkdown(body))
}

// NewDisclaimerTile builds the disclaimer tile from the embedded markdown
func NewDisclaimerTile(tr *locale.Translator) *ui.Tile {
	return ui.NewTile(DisclaimerTileID, tr.T(locale.KeyTileDisclaimer), renderMarkdown(disclaimerMarkdown))
}

// ReloadAboutTile re-reads the about source and swaps the tile content
func ReloadAboutTile(tile *ui.Tile, path string, tr *locale.Translator) {
	if tile == nil {
		return
	}
	body := readMarkdown(path, tr)
	tile.SetContent(renderMarkdown(body))
	log.Printf("about tile reloaded from %s", path)
}

// readMarkdown reads the file at path, falling back to the localized
// placeholder body
func readMarkdown(path string, tr *locale.Translator) string {
	if path == "" {
		return tr.T(locale.KeyAboutMissingBody)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("failed to read content file %s: %v", path, err)
		return tr.T(locale.KeyAboutMissingBody)
	}
	return string(data)
}

// renderMarkdown renders a markdown body into a scrollable rich text view
func renderMarkdown(body string) fyne.CanvasObject {
	rich := widget.NewRichTextFromMarkdown(body)
	rich.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(rich)
}
