package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mosaicui/mosaic/internal/config"
	"github.com/mosaicui/mosaic/internal/locale"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings   *config.Settings
	translator *locale.Translator
	window     fyne.Window
	dialog     *dialog.ConfirmDialog
	onSaved    func()

	// UI components
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, tr *locale.Translator, onSaved func()) {
	sd := NewSettingsDialog(settings, tr, window, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, tr *locale.Translator, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:   settings,
		translator: tr,
		window:     window,
		onSaved:    onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection: display names in stable code order
	labels := sd.translator.AvailableLanguages()
	codes := make([]string, 0, len(labels))
	for code := range labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	options := make([]string, 0, len(codes))
	for _, code := range codes {
		options = append(options, labels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)
	sd.languageSelect.PlaceHolder = sd.translator.T(locale.KeySettingsLanguage)

	form := container.NewVBox(
		widget.NewLabel(sd.translator.T(locale.KeySettingsLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.translator.T(locale.KeySettingsTitle),
		sd.translator.T(locale.KeySettingsSave),
		sd.translator.T(locale.KeySettingsCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	if name, ok := sd.translator.AvailableLanguages()[current]; ok {
		sd.languageSelect.SetSelected(name)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save language: map the selected display name back to its code
	if sd.languageSelect.Selected != "" {
		for code, name := range sd.translator.AvailableLanguages() {
			if name == sd.languageSelect.Selected {
				sd.settings.SetLanguage(code)
				break
			}
		}
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.translator.T(locale.KeySettingsTitle),
		sd.translator.T(locale.KeySettingsSaved),
		sd.window,
	)
}
