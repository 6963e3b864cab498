package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It owns the application state, runs the workers on background goroutines and
// applies their results on the UI thread. All UI strings are localized via Localization.
