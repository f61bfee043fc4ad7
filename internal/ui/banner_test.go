package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/model"
)

func TestNewBanner(t *testing.T) {
	test.NewApp()

	banner := NewBanner("welcome", model.NoticeInfo)
	if banner.ID() == "" {
		t.Error("banner should carry an instance ID")
	}
	if banner.Message() != "welcome" {
		t.Errorf("banner message = %q, expected welcome", banner.Message())
	}
	if banner.Dismissed() {
		t.Error("fresh banner should not be dismissed")
	}
}

func TestNewCatalogBanner(t *testing.T) {
	test.NewApp()
	tr := newTestTranslator(t)

	banner := NewCatalogBanner(tr, locale.KeyAppBanner, model.NoticeInfo)
	if banner.Message() != tr.T(locale.KeyAppBanner) {
		t.Errorf("banner message = %q, expected the catalog text", banner.Message())
	}
	if banner.closeBtn.Text != tr.T(locale.KeyBannerDismiss) {
		t.Errorf("close button = %q, expected the localized dismiss label", banner.closeBtn.Text)
	}

	english := banner.Message()
	tr.SetLanguage("fr")
	banner.RefreshText()
	if banner.Message() == english {
		t.Error("RefreshText should re-resolve the message in the new language")
	}
}

func TestBannerRefreshTextIsNoOpForPlainMessage(t *testing.T) {
	test.NewApp()

	banner := NewBanner("static notice", model.NoticeInfo)
	banner.RefreshText()
	if banner.Message() != "static notice" {
		t.Errorf("banner message = %q, expected the original text", banner.Message())
	}
}

func TestNewBanner_InvalidTypeFallsBackToInfo(t *testing.T) {
	test.NewApp()

	banner := NewBanner("msg", model.NoticeType("Fatal"))
	if banner.NoticeType() != model.NoticeInfo {
		t.Errorf("banner type = %s, expected %s", banner.NoticeType(), model.NoticeInfo)
	}
}

func TestBannerAttachKeepsTileIdentity(t *testing.T) {
	test.NewApp()

	tile := NewTile("about_tile", "About", nil)
	before := tile

	banner := NewBanner("welcome", model.NoticeInfo)
	banner.AttachTo(tile)

	if tile != before {
		t.Error("banner attachment must not replace the tile reference")
	}
	if tile.ID() != "about_tile" {
		t.Errorf("tile ID after attach = %q, expected about_tile", tile.ID())
	}
}

func TestBannerDismissIsOneShot(t *testing.T) {
	test.NewApp()

	tile := NewTile("about_tile", "About", nil)
	banner := NewBanner("welcome", model.NoticeWarning)
	banner.AttachTo(tile)

	dismissals := 0
	banner.OnDismissed = func() { dismissals++ }

	banner.Dismiss()
	if !banner.Dismissed() {
		t.Error("banner should report dismissed")
	}

	// Second dismissal and re-attachment are no-ops
	banner.Dismiss()
	banner.AttachTo(tile)
	if dismissals != 1 {
		t.Errorf("OnDismissed ran %d times, expected once", dismissals)
	}
	if len(tile.bannerSlot.Objects) != 0 {
		t.Error("dismissed banner must stay detached from the tile")
	}
}

func TestBannerDismissDetachesFromTile(t *testing.T) {
	test.NewApp()

	tile := NewTile("about_tile", "About", nil)
	banner := NewBanner("welcome", model.NoticeInfo)
	banner.AttachTo(tile)

	if len(tile.bannerSlot.Objects) != 1 {
		t.Fatal("banner should be mounted on the tile")
	}

	banner.Dismiss()
	if len(tile.bannerSlot.Objects) != 0 {
		t.Error("banner should be unmounted after dismissal")
	}
}
