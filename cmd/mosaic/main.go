package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/mosaicui/mosaic/internal/config"
	"github.com/mosaicui/mosaic/internal/content"
	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/model"
	"github.com/mosaicui/mosaic/internal/ui"
)

// Minimal launcher: default manifest, no content watcher. The root main.go
// is the full entry point.
func main() {
	manifest, err := config.LoadManifest("")
	if err != nil {
		log.Fatalf("failed to load manifest: %v", err)
	}

	myApp := app.NewWithID("com.mosaicui.mosaic")
	myApp.Settings().SetTheme(ui.NewDashboardTheme())

	settings := config.NewSettings(myApp)
	tr, err := locale.NewTranslator(settings.GetLanguage())
	if err != nil {
		log.Fatalf("failed to initialize message catalog: %v", err)
	}

	myWindow := myApp.NewWindow(tr.T(locale.KeyAppTitle))
	myWindow.Resize(fyne.NewSize(float32(manifest.WindowWidth), float32(manifest.WindowHeight)))

	tiles := []*ui.Tile{
		content.NewAboutTile(manifest.AboutPath, tr),
		content.NewDisclaimerTile(tr),
	}
	drawerItems := []model.DrawerItem{
		{Label: locale.KeyDrawerAbout, Icon: ui.IconNameInfo, Target: content.AboutTileID},
		{Label: locale.KeyDrawerDisclaimer, Icon: ui.IconNameWarning, Target: content.DisclaimerTileID},
	}

	var shell *ui.AppShell
	drawer := ui.NewNavDrawer(drawerItems, manifest.NavLinks(), tr, func(url string) {
		if shell != nil {
			shell.OpenLink(url)
		}
	})
	appBar := ui.NewAppBar(tr.T(locale.KeyAppTitle), func() {
		if shell != nil {
			shell.ToggleDrawer()
		}
	})

	shell = ui.NewAppShell(myWindow, myApp, tiles, appBar, ui.NewDefaultFooter(tr), drawer, tr, settings)
	shell.ShowTile(manifest.InitialTile)

	myWindow.ShowAndRun()
}
