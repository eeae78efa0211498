package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/cameronspears/vidsquid/internal/compress"
	"github.com/cameronspears/vidsquid/internal/model"
	"github.com/cameronspears/vidsquid/internal/platform"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	compressSvc  compress.Compressor
	localization *Localization

	selectBtn   *widget.Button
	statusLabel *widget.Label
	revealBtn   *widget.Button
	playBtn     *widget.Button

	// status is written by compression jobs from their own goroutines
	status binding.String

	// revealPath is the output of the last completed job
	revealPath string

	outputForm      *outputForm
	overwriteDialog dialog.Dialog
	profileDialog   dialog.Dialog

	// swapped in tests
	openInManager func(string) error
	openWithApp   func(string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, compressSvc compress.Compressor) *RootUI {
	ui := &RootUI{
		window:        window,
		compressSvc:   compressSvc,
		localization:  NewLocalization(),
		status:        binding.NewString(),
		openInManager: platform.OpenFileInManager,
		openWithApp:   platform.OpenFileWithDefaultApp,
	}

	window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.compressSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.selectBtn = widget.NewButton(ui.localization.GetText(KeySelectVideo), ui.onSelectFileClick)
	ui.selectBtn.Importance = widget.HighImportance

	ui.statusLabel = widget.NewLabelWithData(ui.status)
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	ui.revealBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyShowInFolder), ui.onRevealClick)
	ui.revealBtn.Importance = widget.LowImportance
	ui.revealBtn.Hide()

	ui.playBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyOpenVideo), ui.onPlayClick)
	ui.playBtn.Importance = widget.LowImportance
	ui.playBtn.Hide()

	content := container.NewVBox(
		container.NewPadded(ui.selectBtn),
		ui.statusLabel,
		container.NewCenter(container.NewHBox(ui.revealBtn, ui.playBtn)),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	selectItem := fyne.NewMenuItem(ui.localization.GetText(KeySelectVideo), ui.onSelectFileClick)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.languageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), selectItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange switches UI text for the rest of the session
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.selectBtn.SetText(ui.localization.GetText(KeySelectVideo))
	ui.revealBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyShowInFolder))
	ui.playBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyOpenVideo))
}

// onSelectFileClick starts the pick-input, pick-output, pick-profile flow.
// Dismissing any step aborts the flow without side effects.
func (ui *RootUI) onSelectFileClick() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("Open dialog failed: %v", err)
			return
		}
		if reader == nil {
			return
		}
		inputPath := reader.URI().Path()
		_ = reader.Close()

		ui.onInputChosen(inputPath)
	}, ui.window)

	open.SetFilter(storage.NewExtensionFileFilter(VideoExtensions))
	open.Show()
}

// showProfileChooser offers the three profiles; Cancel aborts
func (ui *RootUI) showProfileChooser(inputPath, outputPath string) {
	buttons := container.NewGridWithColumns(3)
	for _, profile := range compress.Profiles() {
		name := profile.String()
		btn := widget.NewButton(ui.localization.GetText(name), func() {
			if ui.profileDialog != nil {
				ui.profileDialog.Hide()
			}
			ui.onProfileChosen(inputPath, outputPath, name)
		})
		buttons.Add(btn)
	}

	ui.profileDialog = dialog.NewCustom(
		ui.localization.GetText(KeyChooseCompression),
		ui.localization.GetText(KeyCancel),
		buttons,
		ui.window,
	)
	ui.profileDialog.Show()
}

// onProfileChosen publishes the start message and hands the job off.
// The event loop never waits on the job.
func (ui *RootUI) onProfileChosen(inputPath, outputPath, profileName string) {
	profile, err := compress.ParseProfile(profileName)
	if err != nil {
		log.Printf("Profile selection rejected: %v", err)
		return
	}

	ui.hideReveal()
	compress.PublishStatus(ui.status, profile.StartMessage())

	log.Printf("Starting %s compression: %s -> %s", profile, inputPath, outputPath)
	ui.compressSvc.Start(compress.Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Profile:    profile,
	}, ui.status)
}

// onTaskUpdate runs on the job goroutine
func (ui *RootUI) onTaskUpdate(task model.CompressionTask) {
	if !task.Status.IsFinished() {
		return
	}
	log.Printf("Compression %q finished: %s", task.GetDisplayTitle(), task.Status)

	fyne.Do(func() {
		if task.Status == model.TaskStatusCompleted {
			ui.revealPath = task.OutputPath
			ui.revealBtn.Show()
			ui.playBtn.Show()
			return
		}
		ui.hideReveal()
	})
}

// onRevealClick opens the last output in the file manager
func (ui *RootUI) onRevealClick() {
	if ui.revealPath == "" {
		return
	}
	if err := ui.openInManager(ui.revealPath); err != nil {
		log.Printf("Failed to reveal %s: %v", ui.revealPath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
	}
}

// onPlayClick opens the last output with the default video player
func (ui *RootUI) onPlayClick() {
	if ui.revealPath == "" {
		return
	}
	if err := ui.openWithApp(ui.revealPath); err != nil {
		log.Printf("Failed to open %s: %v", ui.revealPath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

func (ui *RootUI) hideReveal() {
	ui.revealPath = ""
	ui.revealBtn.Hide()
	ui.playBtn.Hide()
}
