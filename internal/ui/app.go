package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/cameronspears/vidsquid/internal/compress"
)

// Run opens the main window and blocks until it is closed
func Run(compressSvc compress.Compressor) error {
	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewRootUI(myWindow, compressSvc)

	myWindow.ShowAndRun()
	return nil
}
