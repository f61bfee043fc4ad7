package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AppBar is the top title bar: a drawer toggle button, the app title, and a
// settings shortcut on the trailing edge.
type AppBar struct {
	widget.BaseWidget

	titleLabel  *widget.Label
	toggleBtn   *widget.Button
	settingsBtn *widget.Button

	// onSettings runs when the settings shortcut is tapped, wired by the shell
	onSettings func()

	root *fyne.Container
}

// NewAppBar creates an app bar with the given title. onToggle runs when the
// drawer toggle button is tapped; nil is allowed.
func NewAppBar(title string, onToggle func()) *AppBar {
	ab := &AppBar{}
	ab.ExtendBaseWidget(ab)

	ab.toggleBtn = widget.NewButton(IconMenu, func() {
		if onToggle != nil {
			onToggle()
		}
	})
	ab.toggleBtn.Importance = widget.LowImportance

	ab.settingsBtn = widget.NewButton(IconGear, func() {
		if ab.onSettings != nil {
			ab.onSettings()
		}
	})
	ab.settingsBtn.Importance = widget.LowImportance

	ab.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ab.root = container.NewBorder(nil, widget.NewSeparator(), ab.toggleBtn, ab.settingsBtn, ab.titleLabel)
	return ab
}

// SetOnSettings sets the handler behind the settings shortcut
func (ab *AppBar) SetOnSettings(onSettings func()) {
	ab.onSettings = onSettings
}

// SetTitle updates the title in the app bar
func (ab *AppBar) SetTitle(title string) {
	ab.titleLabel.SetText(title)
}

// Title returns the currently displayed title
func (ab *AppBar) Title() string {
	return ab.titleLabel.Text
}

// CreateRenderer implements fyne.Widget
func (ab *AppBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ab.root)
}
