package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconMenu    = "☰"
	IconClose   = "×"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconError   = "❌"
	IconSuccess = "✔"
	IconFolder  = "📁"
	IconCode    = "💻"
	IconBook    = "📖"
	IconBug     = "🐞"
	IconGear    = "⚙"
)

// Icon identifiers accepted in drawer item records
const (
	IconNameInfo    = "info"
	IconNameWarning = "warning"
	IconNameFolder  = "folder"
	IconNameCode    = "code"
	IconNameBook    = "book"
	IconNameBug     = "bug"
)

// Layout sizing
const (
	DrawerMinWidth  float32 = 200
	TileMinWidth    float32 = 400
	BannerMinHeight float32 = 48

	SettingsDialogWidth  float32 = 400
	SettingsDialogHeight float32 = 220
)

// iconGlyph maps a drawer icon identifier to its rendered symbol.
// Unknown identifiers fall back to the folder glyph, matching the original
// toolkit's default drawer icon.
func iconGlyph(name string) string {
	switch name {
	case IconNameInfo:
		return IconInfo
	case IconNameWarning:
		return IconWarning
	case IconNameCode:
		return IconCode
	case IconNameBook:
		return IconBook
	case IconNameBug:
		return IconBug
	default:
		return IconFolder
	}
}
