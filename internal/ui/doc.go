package ui

// Package ui contains the Fyne-based desktop interface for vidsquid.
// It walks the user through picking an input video, a destination and a
// compression profile, then hands the job to the compression service and
// mirrors its status in a bound label. All UI strings are localized via
// Localization; status messages come from the compression service.
