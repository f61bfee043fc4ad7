package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mosaicui/mosaic/internal/locale"
	"github.com/mosaicui/mosaic/internal/model"
)

// linkRow pairs a rendered drawer link with its catalog key so labels can be
// refreshed on language change
type linkRow struct {
	key string
	btn *widget.Button
}

// NavDrawer is the navigation side panel: the ordered tile items on top, a
// divider, then the external project links. Items render in input order and
// are not de-duplicated.
type NavDrawer struct {
	widget.BaseWidget

	items      []model.DrawerItem
	links      model.Links
	translator *locale.Translator

	// onSelect receives the target tile ID of a tapped item
	onSelect func(target string)
	// openLink opens an external URL, injected by the shell
	openLink func(url string)

	itemBtns []*widget.Button
	linkRows []linkRow

	root *fyne.Container
}

// NewNavDrawer creates the drawer from the ordered item records and the
// external link set. Empty links are skipped.
func NewNavDrawer(items []model.DrawerItem, links model.Links, tr *locale.Translator, openLink func(url string)) *NavDrawer {
	nd := &NavDrawer{
		items:      items,
		links:      links,
		translator: tr,
		openLink:   openLink,
	}
	nd.ExtendBaseWidget(nd)
	nd.createUI()
	return nd
}

// createUI builds the drawer rows
func (nd *NavDrawer) createUI() {
	itemBox := container.NewVBox()
	for _, item := range nd.items {
		target := item.Target // capture for closure
		btn := widget.NewButton(nd.itemLabel(item), func() {
			if nd.onSelect == nil {
				log.Printf("drawer item %q tapped with no selection handler", target)
				return
			}
			nd.onSelect(target)
		})
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance

		nd.itemBtns = append(nd.itemBtns, btn)
		itemBox.Add(btn)
	}

	linkBox := container.NewVBox()
	nd.addLink(linkBox, locale.KeyDrawerSourceCode, IconCode, nd.links.Repository)
	nd.addLink(linkBox, locale.KeyDrawerWiki, IconBook, nd.links.Documentation)
	nd.addLink(linkBox, locale.KeyDrawerBugReport, IconBug, nd.links.Issues)

	nd.root = container.NewVBox(itemBox)
	if len(linkBox.Objects) > 0 {
		nd.root.Add(widget.NewSeparator())
		nd.root.Add(linkBox)
	}
}

// addLink appends an external link row when the URL is configured
func (nd *NavDrawer) addLink(box *fyne.Container, key, icon, url string) {
	if url == "" {
		return
	}

	linkURL := url // capture for closure
	btn := widget.NewButton(icon+" "+nd.translator.T(key), func() {
		if nd.openLink == nil {
			return
		}
		nd.openLink(linkURL)
	})
	btn.Alignment = widget.ButtonAlignLeading
	btn.Importance = widget.LowImportance

	nd.linkRows = append(nd.linkRows, linkRow{key: key, btn: btn})
	box.Add(btn)
}

// itemLabel renders a drawer item's glyph and localized label
func (nd *NavDrawer) itemLabel(item model.DrawerItem) string {
	return iconGlyph(item.Icon) + " " + nd.translator.T(item.Label)
}

// SetOnSelect sets the handler receiving tapped item targets
func (nd *NavDrawer) SetOnSelect(onSelect func(target string)) {
	nd.onSelect = onSelect
}

// Items returns the drawer items in render order
func (nd *NavDrawer) Items() []model.DrawerItem {
	return nd.items
}

// Targets returns the tile IDs referenced by the drawer items, in order
func (nd *NavDrawer) Targets() []string {
	targets := make([]string, 0, len(nd.items))
	for _, item := range nd.items {
		targets = append(targets, item.Target)
	}
	return targets
}

// RefreshTexts re-resolves every label against the current language
func (nd *NavDrawer) RefreshTexts() {
	for i, item := range nd.items {
		nd.itemBtns[i].SetText(nd.itemLabel(item))
	}
	for _, row := range nd.linkRows {
		row.btn.SetText(nd.linkGlyph(row.key) + " " + nd.translator.T(row.key))
	}
}

// linkGlyph returns the glyph used for an external link row
func (nd *NavDrawer) linkGlyph(key string) string {
	switch key {
	case locale.KeyDrawerSourceCode:
		return IconCode
	case locale.KeyDrawerWiki:
		return IconBook
	case locale.KeyDrawerBugReport:
		return IconBug
	default:
		return IconFolder
	}
}

// MinSize reserves the fixed panel width of the original drawer
func (nd *NavDrawer) MinSize() fyne.Size {
	min := nd.BaseWidget.MinSize()
	if min.Width < DrawerMinWidth {
		min.Width = DrawerMinWidth
	}
	return min
}

// CreateRenderer implements fyne.Widget
func (nd *NavDrawer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, widget.NewSeparator(), nd.root))
}
