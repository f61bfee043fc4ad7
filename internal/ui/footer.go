package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mosaicui/mosaic/internal/locale"
)

// Footer is the bottom bar carrying the copyright line
type Footer struct {
	widget.BaseWidget

	textLabel *widget.Label
	root      *fyne.Container
}

// NewFooter creates a footer with the given text
func NewFooter(text string) *Footer {
	f := &Footer{}
	f.ExtendBaseWidget(f)

	f.textLabel = widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{})
	f.root = container.NewBorder(widget.NewSeparator(), nil, nil, nil, f.textLabel)
	return f
}

// NewFooterWithYear creates a footer from the catalog's footer entry with the
// given year substituted.
func NewFooterWithYear(tr *locale.Translator, year int) *Footer {
	return NewFooter(FooterText(tr, year))
}

// NewDefaultFooter creates the footer for the current year
func NewDefaultFooter(tr *locale.Translator) *Footer {
	return NewFooterWithYear(tr, currentYear())
}

// FooterText resolves the footer catalog entry with the year substituted
func FooterText(tr *locale.Translator, year int) string {
	return tr.TData(locale.KeyAppFooter, map[string]interface{}{"Year": year})
}

// currentYear returns the calendar year used by the default footer
func currentYear() int {
	return time.Now().Year()
}

// SetText updates the footer text
func (f *Footer) SetText(text string) {
	f.textLabel.SetText(text)
}

// Text returns the currently displayed footer text
func (f *Footer) Text() string {
	return f.textLabel.Text
}

// CreateRenderer implements fyne.Widget
func (f *Footer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(f.root)
}
