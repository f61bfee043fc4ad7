package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Tile is an identified content panel, the unit of navigation. The app shell
// shows exactly one tile at a time; the drawer items reference tiles by ID.
type Tile struct {
	widget.BaseWidget

	id string

	titleLabel  *widget.Label
	contentSlot *fyne.Container
	bannerSlot  *fyne.Container
	notice      *Banner

	root *fyne.Container
}

// NewTile creates a tile with the given identifier, title and content
func NewTile(id, title string, content fyne.CanvasObject) *Tile {
	t := &Tile{id: id}
	t.ExtendBaseWidget(t)

	t.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	t.bannerSlot = container.NewVBox()
	t.contentSlot = container.NewStack()
	if content != nil {
		t.contentSlot.Add(content)
	}

	card := container.NewBorder(
		container.NewVBox(t.bannerSlot, t.titleLabel, widget.NewSeparator()),
		nil, nil, nil,
		container.NewPadded(t.contentSlot),
	)
	t.root = container.NewPadded(card)
	return t
}

// ID returns the tile identifier used as a navigation target
func (t *Tile) ID() string {
	return t.id
}

// Title returns the tile title
func (t *Tile) Title() string {
	return t.titleLabel.Text
}

// SetTitle replaces the tile title
func (t *Tile) SetTitle(title string) {
	t.titleLabel.SetText(title)
}

// SetContent replaces the tile content
func (t *Tile) SetContent(content fyne.CanvasObject) {
	t.contentSlot.RemoveAll()
	if content != nil {
		t.contentSlot.Add(content)
	}
	t.contentSlot.Refresh()
}

// Notice returns the mounted banner, nil when none is attached
func (t *Tile) Notice() *Banner {
	return t.notice
}

// attachNotice mounts a banner above the tile title. Only one banner is
// shown at a time; attaching replaces any previous one.
func (t *Tile) attachNotice(b *Banner) {
	t.notice = b
	t.bannerSlot.RemoveAll()
	t.bannerSlot.Add(b)
	t.bannerSlot.Refresh()
}

// detachNotice removes the mounted banner, if any
func (t *Tile) detachNotice() {
	t.notice = nil
	t.bannerSlot.RemoveAll()
	t.bannerSlot.Refresh()
}

// MinSize keeps the content region from collapsing below a readable width
func (t *Tile) MinSize() fyne.Size {
	min := t.BaseWidget.MinSize()
	if min.Width < TileMinWidth {
		min.Width = TileMinWidth
	}
	return min
}

// CreateRenderer implements fyne.Widget
func (t *Tile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.root)
}
