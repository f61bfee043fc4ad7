package ui

// Package ui contains the Fyne-based desktop shell for the application: app
// bar, navigation drawer, tiles, footer, and banner notices. It wires drawer
// selections to tile visibility and renders every label through the message
// catalog in internal/locale.
