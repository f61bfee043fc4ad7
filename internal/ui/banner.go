package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/model"
)

// Banner is a one-shot dismissible notice mounted on a tile. Once the user
// dismisses it, it detaches from its tile and cannot be shown again; nothing
// about it is persisted across sessions.
type Banner struct {
	widget.BaseWidget

	id         string
	noticeType model.NoticeType
	dismissed  bool
	tile       *Tile

	// set for catalog-backed banners so language switches re-resolve the text
	translator *locale.Translator
	messageKey string

	messageLabel *widget.Label
	closeBtn     *widget.Button
	background   *canvas.Rectangle

	root *fyne.Container

	// OnDismissed runs after the banner detaches, nil allowed
	OnDismissed func()
}

// NewBanner creates a banner with the given message and severity
func NewBanner(message string, noticeType model.NoticeType) *Banner {
	if !noticeType.Valid() {
		noticeType = model.NoticeInfo
	}

	b := &Banner{
		id:         uuid.NewString(),
		noticeType: noticeType,
	}
	b.ExtendBaseWidget(b)

	b.messageLabel = widget.NewLabel(message)
	b.messageLabel.Wrapping = fyne.TextWrapWord

	b.closeBtn = widget.NewButton(IconClose, b.Dismiss)
	b.closeBtn.Importance = widget.LowImportance

	b.background = canvas.NewRectangle(theme.Color(b.colorName()))
	b.background.SetMinSize(fyne.NewSize(0, BannerMinHeight))

	b.root = container.NewStack(
		b.background,
		container.NewBorder(nil, nil, widget.NewLabel(b.glyph()), b.closeBtn, b.messageLabel),
	)
	return b
}

// NewCatalogBanner creates a banner whose message tracks the catalog entry
// for key, so RefreshText can re-resolve it after a language switch. The
// close button carries the localized dismiss label.
func NewCatalogBanner(tr *locale.Translator, key string, noticeType model.NoticeType) *Banner {
	b := NewBanner(tr.T(key), noticeType)
	b.translator = tr
	b.messageKey = key
	b.closeBtn.SetText(tr.T(locale.KeyBannerDismiss))
	return b
}

// RefreshText re-resolves the banner texts against the current language.
// No-op for banners built from a plain string.
func (b *Banner) RefreshText() {
	if b.translator == nil || b.messageKey == "" {
		return
	}
	b.messageLabel.SetText(b.translator.T(b.messageKey))
	b.closeBtn.SetText(b.translator.T(locale.KeyBannerDismiss))
}

// colorName maps the notice severity to a theme color
func (b *Banner) colorName() fyne.ThemeColorName {
	switch b.noticeType {
	case model.NoticeSuccess:
		return theme.ColorNameSuccess
	case model.NoticeWarning:
		return theme.ColorNameWarning
	case model.NoticeError:
		return theme.ColorNameError
	default:
		return theme.ColorNameHeaderBackground
	}
}

// glyph returns the severity symbol rendered before the message
func (b *Banner) glyph() string {
	switch b.noticeType {
	case model.NoticeSuccess:
		return IconSuccess
	case model.NoticeWarning:
		return IconWarning
	case model.NoticeError:
		return IconError
	default:
		return IconInfo
	}
}

// ID returns the banner instance identifier
func (b *Banner) ID() string {
	return b.id
}

// Message returns the displayed notice text
func (b *Banner) Message() string {
	return b.messageLabel.Text
}

// SetMessage updates the notice text
func (b *Banner) SetMessage(message string) {
	b.messageLabel.SetText(message)
}

// NoticeType returns the banner severity
func (b *Banner) NoticeType() model.NoticeType {
	return b.noticeType
}

// Dismissed reports whether the user closed the banner
func (b *Banner) Dismissed() bool {
	return b.dismissed
}

// AttachTo mounts the banner on the given tile. A dismissed banner cannot be
// re-attached; the tile itself is left untouched apart from the banner slot.
func (b *Banner) AttachTo(tile *Tile) {
	if tile == nil {
		return
	}
	if b.dismissed {
		log.Printf("banner %s already dismissed, not attaching to tile %s", b.id, tile.ID())
		return
	}

	b.tile = tile
	tile.attachNotice(b)
}

// Dismiss hides the banner and detaches it from its tile. Safe to call more
// than once.
func (b *Banner) Dismiss() {
	if b.dismissed {
		return
	}
	b.dismissed = true

	if b.tile != nil {
		b.tile.detachNotice()
		b.tile = nil
	}
	b.Hide()

	if b.OnDismissed != nil {
		b.OnDismissed()
	}
}

// CreateRenderer implements fyne.Widget
func (b *Banner) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.root)
}
