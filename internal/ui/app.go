package ui

import (
	"log"
	"net/url"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/mosaicui/mosaic/internal/config"
	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/model"
	"github.com/mosaicui/mosaic/internal/platform"
)

// AppShell is the top-level composite: app bar on top, footer at the bottom,
// navigation drawer on the left, and the tile region in the center. Exactly
// one tile is visible at a time.
type AppShell struct {
	window     fyne.Window
	fyneApp    fyne.App
	translator *locale.Translator
	settings   *config.Settings

	appBar *AppBar
	footer *Footer
	drawer *NavDrawer

	tiles     []*Tile
	tilesByID map[string]*Tile
	currentID string

	tileRegion *fyne.Container
}

// NewAppShell assembles the shell from its parts. Drawer items whose target
// has no matching tile are logged at construction; tapping them later is a
// no-op.
func NewAppShell(window fyne.Window, app fyne.App, tiles []*Tile, appBar *AppBar, footer *Footer, drawer *NavDrawer, tr *locale.Translator, settings *config.Settings) *AppShell {
	shell := &AppShell{
		window:     window,
		fyneApp:    app,
		translator: tr,
		settings:   settings,
		appBar:     appBar,
		footer:     footer,
		drawer:     drawer,
		tiles:      tiles,
		tilesByID:  make(map[string]*Tile, len(tiles)),
	}

	for _, tile := range tiles {
		if _, exists := shell.tilesByID[tile.ID()]; exists {
			log.Printf("duplicate tile id %q, keeping the first one", tile.ID())
			continue
		}
		shell.tilesByID[tile.ID()] = tile
	}

	if drawer != nil {
		for _, target := range model.MissingTargets(drawer.Items(), shell.TileIDs()) {
			log.Printf("drawer item targets unknown tile %q, selection will be a no-op", target)
		}
		drawer.SetOnSelect(shell.onDrawerSelect)
	}
	if appBar != nil {
		appBar.SetOnSettings(shell.onShowSettings)
	}

	window.SetTitle(tr.T(locale.KeyAppTitle))

	shell.setupUI()
	return shell
}

// setupUI arranges the shell regions and builds the main menu
func (shell *AppShell) setupUI() {
	shell.createMenu()

	shell.tileRegion = container.NewStack()
	for _, tile := range shell.tiles {
		tile.Hide()
		shell.tileRegion.Add(tile)
	}

	var top, bottom, left fyne.CanvasObject
	if shell.appBar != nil {
		top = shell.appBar
	}
	if shell.footer != nil {
		bottom = shell.footer
	}
	if shell.drawer != nil {
		left = shell.drawer
	}

	content := container.NewBorder(top, bottom, left, nil, shell.tileRegion)
	shell.window.SetContent(content)
}

// createMenu creates the application menu
func (shell *AppShell) createMenu() {
	settingsItem := fyne.NewMenuItem(shell.translator.T(locale.KeyMenuSettings), shell.onShowSettings)

	// Language submenu, in stable code order
	labels := shell.translator.AvailableLanguages()
	codes := make([]string, 0, len(labels))
	for code := range labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(shell.translator.T(locale.KeyMenuLanguage))
	for _, code := range codes {
		langCode := code // capture for closure
		langItem := fyne.NewMenuItem(labels[code], func() {
			shell.onLanguageChange(langCode)
		})
		if shell.translator.CurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(shell.translator.T(locale.KeyMenuFile), settingsItem),
		languageMenu,
	)
	shell.window.SetMainMenu(mainMenu)
}

// onShowSettings shows the settings dialog
func (shell *AppShell) onShowSettings() {
	ShowSettingsDialog(shell.window, shell.settings, shell.translator, func() {
		shell.onLanguageChange(shell.settings.GetLanguage())
	})
}

// onLanguageChange switches the active language and re-renders every
// localized label
func (shell *AppShell) onLanguageChange(langCode string) {
	shell.translator.SetLanguage(langCode)
	if shell.settings != nil {
		shell.settings.SetLanguage(langCode)
	}

	shell.RefreshTexts()

	// Recreate menu to update checkmarks
	shell.createMenu()
}

// RefreshTexts updates window title, app bar, drawer and footer with the
// current language
func (shell *AppShell) RefreshTexts() {
	title := shell.translator.T(locale.KeyAppTitle)
	shell.window.SetTitle(title)
	if shell.appBar != nil {
		shell.appBar.SetTitle(title)
	}
	if shell.drawer != nil {
		shell.drawer.RefreshTexts()
	}
	if shell.footer != nil {
		shell.footer.SetText(FooterText(shell.translator, currentYear()))
	}
	for _, tile := range shell.tiles {
		if notice := tile.Notice(); notice != nil {
			notice.RefreshText()
		}
	}
}

// onDrawerSelect handles drawer item taps
func (shell *AppShell) onDrawerSelect(target string) {
	shell.ShowTile(target)
}

// ShowTile hides every tile except the one with the given ID, shows it, and
// returns it for further mutation (e.g. banner attachment). An unknown ID
// logs a warning, changes nothing, and returns nil.
func (shell *AppShell) ShowTile(id string) *Tile {
	target, exists := shell.tilesByID[id]
	if !exists {
		log.Printf("ShowTile: no tile with id %q", id)
		return nil
	}

	for _, tile := range shell.tiles {
		if tile != target {
			tile.Hide()
		}
	}
	target.Show()
	shell.currentID = id
	shell.tileRegion.Refresh()

	return target
}

// CurrentTileID returns the ID of the visible tile, empty before the first
// ShowTile call
func (shell *AppShell) CurrentTileID() string {
	return shell.currentID
}

// Tile returns the tile with the given ID
func (shell *AppShell) Tile(id string) (*Tile, bool) {
	tile, ok := shell.tilesByID[id]
	return tile, ok
}

// TileIDs returns the identifiers of all registered tiles in registration
// order
func (shell *AppShell) TileIDs() []string {
	ids := make([]string, 0, len(shell.tiles))
	for _, tile := range shell.tiles {
		ids = append(ids, tile.ID())
	}
	return ids
}

// ToggleDrawer shows or hides the navigation drawer
func (shell *AppShell) ToggleDrawer() {
	if shell.drawer == nil {
		return
	}
	if shell.drawer.Visible() {
		shell.drawer.Hide()
	} else {
		shell.drawer.Show()
	}
}

// OpenLink opens an external link, preferring the toolkit opener and falling
// back to the platform browser dispatch. Links are passed through verbatim.
func (shell *AppShell) OpenLink(rawURL string) {
	parsed, err := url.Parse(rawURL)
	if err == nil && shell.fyneApp != nil {
		if err := shell.fyneApp.OpenURL(parsed); err == nil {
			return
		}
	}

	if err := platform.OpenInBrowser(rawURL); err != nil {
		log.Printf("failed to open link %s: %v", rawURL, err)
	}
}
