package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It implements controller.View: the file list with size estimates, the quality
// slider, upload progress, the results log, settings and the light/dark toggle.
// All UI strings are localized via i18n.Localization.
