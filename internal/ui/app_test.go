package ui

import (
	"sort"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/mosaicui/mosaic/internal/config"
	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/model"
)

// buildShell assembles a shell with about and disclaimer tiles for tests
func buildShell(t *testing.T) (*AppShell, *locale.Translator) {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")
	tr := newTestTranslator(t)
	settings := config.NewSettings(app)

	tiles := []*Tile{
		NewTile("about_tile", tr.T(locale.KeyTileAboutTitle), nil),
		NewTile("disclaimer_tile", tr.T(locale.KeyTileDisclaimer), nil),
	}

	items := []model.DrawerItem{
		{Label: locale.KeyDrawerAbout, Icon: IconNameInfo, Target: "about_tile"},
		{Label: locale.KeyDrawerDisclaimer, Icon: IconNameWarning, Target: "disclaimer_tile"},
	}
	links := model.Links{
		Repository:    "https://github.com/mosaicui/mosaic",
		Documentation: "https://github.com/mosaicui/mosaic/wiki",
		Issues:        "https://github.com/mosaicui/mosaic/issues",
	}

	drawer := NewNavDrawer(items, links, tr, nil)
	appBar := NewAppBar(tr.T(locale.KeyAppTitle), nil)
	footer := NewFooterWithYear(tr, 2020)

	return NewAppShell(window, app, tiles, appBar, footer, drawer, tr, settings), tr
}

func TestAppShell_InitialNavigation(t *testing.T) {
	shell, _ := buildShell(t)

	tile := shell.ShowTile("about_tile")
	if tile == nil {
		t.Fatal("ShowTile(about_tile) returned nil")
	}
	if tile.ID() != "about_tile" {
		t.Errorf("shown tile ID = %q, expected about_tile", tile.ID())
	}
	if shell.CurrentTileID() != "about_tile" {
		t.Errorf("CurrentTileID() = %q, expected about_tile", shell.CurrentTileID())
	}
	if !tile.Visible() {
		t.Error("shown tile should be visible")
	}

	if other, _ := shell.Tile("disclaimer_tile"); other.Visible() {
		t.Error("other tiles should be hidden after ShowTile")
	}
}

func TestAppShell_ShowTileReturnsSameReference(t *testing.T) {
	shell, _ := buildShell(t)

	registered, _ := shell.Tile("about_tile")
	shown := shell.ShowTile("about_tile")
	if shown != registered {
		t.Error("ShowTile must return the registered tile reference")
	}
}

func TestAppShell_UnknownTileIsNoOp(t *testing.T) {
	shell, _ := buildShell(t)
	shell.ShowTile("about_tile")

	if tile := shell.ShowTile("results_tile"); tile != nil {
		t.Errorf("ShowTile(unknown) = %v, expected nil", tile)
	}
	if shell.CurrentTileID() != "about_tile" {
		t.Errorf("unknown target changed the current tile to %q", shell.CurrentTileID())
	}

	current, _ := shell.Tile("about_tile")
	if !current.Visible() {
		t.Error("unknown target should leave the visible tile untouched")
	}
}

func TestAppShell_DrawerTargetsAreTiles(t *testing.T) {
	shell, _ := buildShell(t)

	missing := model.MissingTargets(shell.drawer.Items(), shell.TileIDs())
	if len(missing) != 0 {
		t.Errorf("drawer targets %v have no tile", missing)
	}
}

func TestAppShell_DrawerSelectionSwitchesTile(t *testing.T) {
	shell, _ := buildShell(t)
	shell.ShowTile("about_tile")

	shell.onDrawerSelect("disclaimer_tile")
	if shell.CurrentTileID() != "disclaimer_tile" {
		t.Errorf("CurrentTileID() = %q, expected disclaimer_tile", shell.CurrentTileID())
	}
}

func TestAppShell_ToggleDrawer(t *testing.T) {
	shell, _ := buildShell(t)

	if !shell.drawer.Visible() {
		t.Fatal("drawer should start visible")
	}

	shell.ToggleDrawer()
	if shell.drawer.Visible() {
		t.Error("drawer should hide on first toggle")
	}

	shell.ToggleDrawer()
	if !shell.drawer.Visible() {
		t.Error("drawer should show again on second toggle")
	}
}

func TestAppShell_LanguageChangeRefreshesTexts(t *testing.T) {
	shell, tr := buildShell(t)
	shell.ShowTile("about_tile")

	englishTitle := shell.appBar.Title()

	shell.onLanguageChange("fr")
	if tr.CurrentLanguage() != "fr" {
		t.Errorf("translator language = %q, expected fr", tr.CurrentLanguage())
	}
	if shell.appBar.Title() == englishTitle {
		t.Error("app bar title should change with the language")
	}
	if !strings.Contains(shell.footer.Text(), "Mosaic") {
		t.Errorf("footer text = %q, expected the product name", shell.footer.Text())
	}
}

func TestAppShell_LanguageChangeRefreshesBanner(t *testing.T) {
	shell, tr := buildShell(t)
	initial := shell.ShowTile("about_tile")

	banner := NewCatalogBanner(tr, locale.KeyAppBanner, model.NoticeInfo)
	banner.AttachTo(initial)
	englishMessage := banner.Message()

	shell.onLanguageChange("fr")
	if banner.Message() == englishMessage {
		t.Error("attached banner message should change with the language")
	}
	if banner.Message() != tr.T(locale.KeyAppBanner) {
		t.Errorf("banner message = %q, expected the current catalog text", banner.Message())
	}
}

func TestAppShell_LanguageMenuOrderIsStable(t *testing.T) {
	shell, tr := buildShell(t)

	labels := tr.AvailableLanguages()
	codes := make([]string, 0, len(labels))
	for code := range labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	menu := shell.window.MainMenu()
	if len(menu.Items) < 2 {
		t.Fatal("main menu should carry the language submenu")
	}
	langMenu := menu.Items[1]
	if len(langMenu.Items) != len(codes) {
		t.Fatalf("language menu has %d items, expected %d", len(langMenu.Items), len(codes))
	}
	for i, code := range codes {
		if langMenu.Items[i].Label != labels[code] {
			t.Errorf("menu item %d = %q, expected %q", i, langMenu.Items[i].Label, labels[code])
		}
	}
}

func TestAppShell_EndToEndAssembly(t *testing.T) {
	// Build catalog, tiles, bar, footer and drawer, assemble, navigate,
	// attach a banner: the flow the app executes at startup.
	shell, tr := buildShell(t)

	initial := shell.ShowTile("about_tile")
	if initial == nil {
		t.Fatal("initial navigation failed")
	}

	banner := NewBanner(tr.T(locale.KeyAppBanner), model.NoticeInfo)
	banner.AttachTo(initial)

	after, _ := shell.Tile("about_tile")
	if after != initial {
		t.Error("banner attachment must not alter the tile registration")
	}

	if !strings.Contains(shell.footer.Text(), "2020") {
		t.Errorf("footer = %q, expected the substituted year 2020", shell.footer.Text())
	}
}
