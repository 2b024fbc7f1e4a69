package ui

// Package ui contains the Fyne-based desktop user interface: the root
// layout wiring user selections to the batch runner, the application
// theme, and UI-wide constants. Worker events (log lines, progress)
// arrive on background goroutines and are marshaled onto the UI thread
// with fyne.Do.
