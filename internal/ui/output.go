package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/cameronspears/vidsquid/internal/compress"
)

var errEmptyFileName = errors.New("file name is required")

// outputForm collects the destination folder and file name.
// Nothing touches the disk until ffmpeg runs.
type outputForm struct {
	dir       string
	dirLabel  *widget.Label
	nameEntry *widget.Entry
	dialog    *dialog.ConfirmDialog
}

func (f *outputForm) setDir(dir string) {
	f.dir = dir
	f.dirLabel.SetText(dir)
}

// buildOutputPath joins dir and name, appending .mp4 when name has no extension
func buildOutputPath(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errEmptyFileName
	}
	return compress.EnsureMP4Extension(filepath.Join(dir, name)), nil
}

// onInputChosen asks where to write the compressed file, defaulting to
// <input>-compressed.mp4 next to the input
func (ui *RootUI) onInputChosen(inputPath string) {
	form := &outputForm{
		dirLabel:  widget.NewLabel(""),
		nameEntry: widget.NewEntry(),
	}
	form.dirLabel.Truncation = fyne.TextTruncateEllipsis
	form.setDir(filepath.Dir(inputPath))
	form.nameEntry.SetText(filepath.Base(compress.SuggestOutputPath(inputPath)))

	browseBtn := widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), func() {
		ui.onBrowseOutputDir(form)
	})

	content := container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyFolder)),
		container.NewBorder(nil, nil, nil, browseBtn, form.dirLabel),
		widget.NewLabel(ui.localization.GetText(KeyFileName)),
		form.nameEntry,
	)

	form.dialog = dialog.NewCustomConfirm(
		ui.localization.GetText(KeySaveOutput),
		ui.localization.GetText(KeySave),
		ui.localization.GetText(KeyCancel),
		content,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.onOutputConfirmed(inputPath, form)
		},
		ui.window,
	)
	form.dialog.Resize(fyne.NewSize(OutputFormWidth, form.dialog.MinSize().Height))

	ui.outputForm = form
	form.dialog.Show()
}

// onBrowseOutputDir lets the user pick the destination folder
func (ui *RootUI) onBrowseOutputDir(form *outputForm) {
	folder := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder dialog failed: %v", err)
			return
		}
		if uri == nil {
			return
		}
		form.setDir(uri.Path())
	}, ui.window)

	if dir, err := storage.ListerForURI(storage.NewFileURI(form.dir)); err == nil {
		folder.SetLocation(dir)
	}
	folder.Show()
}

func (ui *RootUI) onOutputConfirmed(inputPath string, form *outputForm) {
	outputPath, err := buildOutputPath(form.dir, form.nameEntry.Text)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.onOutputChosen(inputPath, outputPath)
}

// onOutputChosen checks the destination before the profile chooser opens.
// An existing file is only replaced after the user confirms it.
func (ui *RootUI) onOutputChosen(inputPath, outputPath string) {
	// the profile is chosen later; any valid one checks the paths
	req := compress.Request{InputPath: inputPath, OutputPath: outputPath, Profile: compress.DefaultProfile}
	if err := req.Validate(); err != nil {
		log.Printf("Output rejected: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	if _, err := os.Stat(outputPath); err == nil {
		ui.overwriteDialog = dialog.NewConfirm(
			ui.localization.GetText(KeyReplaceTitle),
			fmt.Sprintf(ui.localization.GetText(KeyReplaceMessage), filepath.Base(outputPath)),
			func(replace bool) {
				if replace {
					ui.showProfileChooser(inputPath, outputPath)
				}
			},
			ui.window,
		)
		ui.overwriteDialog.Show()
		return
	}

	ui.showProfileChooser(inputPath, outputPath)
}
