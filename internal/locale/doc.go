package locale

// Package locale provides the translated message catalog for the app. Keys
// are dotted identifiers resolved through go-i18n message bundles loaded from
// embedded TOML files. A key with no message in any locale resolves to the
// key itself.
