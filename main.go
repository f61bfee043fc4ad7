package main

import (
	"context"
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/mosaicui/mosaic/internal/config"
	"github.com/mosaicui/mosaic/internal/content"
	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/model"
	"github.com/mosaicui/mosaic/internal/platform"
	"github.com/mosaicui/mosaic/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.mosaicui.mosaic"

func main() {
	configPath := flag.String("config", "", "path to the manifest file (defaults to mosaic.yaml)")
	flag.Parse()

	log.Printf("Mosaic Dashboard v%s starting...", version)

	manifest, err := config.LoadManifest(*configPath)
	if err != nil {
		log.Fatalf("failed to load manifest: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDashboardTheme())

	settings := config.NewSettings(myApp)

	// Stored preference wins over the manifest language
	lang := settings.GetLanguage()
	if lang == "" || lang == config.DefaultLanguage {
		lang = manifest.Language
	}
	tr, err := locale.NewTranslator(lang)
	if err != nil {
		log.Fatalf("failed to initialize message catalog: %v", err)
	}

	myWindow := myApp.NewWindow(tr.T(locale.KeyAppTitle))
	myWindow.Resize(fyne.NewSize(float32(manifest.WindowWidth), float32(manifest.WindowHeight)))

	aboutPath, _ := platform.ResolveContentPath(manifest.AboutPath)

	aboutTile := content.NewAboutTile(aboutPath, tr)
	disclaimerTile := content.NewDisclaimerTile(tr)

	drawerItems := []model.DrawerItem{
		{Label: locale.KeyDrawerAbout, Icon: ui.IconNameInfo, Target: content.AboutTileID},
		{Label: locale.KeyDrawerDisclaimer, Icon: ui.IconNameWarning, Target: content.DisclaimerTileID},
	}

	// The drawer and app bar are built before the shell that handles their
	// events, so the callbacks close over the shell variable.
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
	footer := ui.NewDefaultFooter(tr)

	shell = ui.NewAppShell(myWindow, myApp, []*ui.Tile{aboutTile, disclaimerTile}, appBar, footer, drawer, tr, settings)

	initial := shell.ShowTile(manifest.InitialTile)
	if initial == nil {
		initial = shell.ShowTile(content.AboutTileID)
	}
	if initial != nil {
		banner := ui.NewCatalogBanner(tr, locale.KeyAppBanner, model.NoticeInfo)
		banner.AttachTo(initial)
	}

	// Live-reload the about tile while the app runs. The watcher tracks the
	// directory, so a file created after startup is picked up too.
	if aboutPath != "" {
		watcher, err := content.NewWatcher(aboutPath, func() {
			fyne.Do(func() {
				content.ReloadAboutTile(aboutTile, aboutPath, tr)
			})
		})
		if err != nil {
			log.Printf("failed to create content watcher: %v", err)
		} else if err := watcher.Start(context.Background()); err != nil {
			log.Printf("failed to start content watcher: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	myWindow.ShowAndRun()
}
