package ui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/cameronspears/vidsquid/internal/compress"
	"github.com/cameronspears/vidsquid/internal/model"
)

// fakeCompressor records Start requests without running anything.
type fakeCompressor struct {
	mu       sync.Mutex
	started  []compress.Request
	sinks    []compress.StatusSink
	callback func(model.CompressionTask)
}

func (f *fakeCompressor) SetUpdateCallback(callback func(model.CompressionTask)) {
	f.callback = callback
}

func (f *fakeCompressor) Compress(ctx context.Context, req compress.Request, sink compress.StatusSink) (*model.CompressionTask, error) {
	return nil, errors.New("not used")
}

func (f *fakeCompressor) Start(req compress.Request, sink compress.StatusSink) *compress.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, req)
	f.sinks = append(f.sinks, sink)
	return nil
}

func (f *fakeCompressor) GetTask(string) (model.CompressionTask, bool) {
	return model.CompressionTask{}, false
}

func newTestUI(t *testing.T) (*RootUI, *fakeCompressor) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("test")
	compressor := &fakeCompressor{}
	return NewRootUI(window, compressor), compressor
}

func statusText(t *testing.T, ui *RootUI) string {
	t.Helper()
	text, err := ui.status.Get()
	if err != nil {
		t.Fatalf("status.Get() error = %v", err)
	}
	return text
}

func TestNewRootUI(t *testing.T) {
	ui, compressor := newTestUI(t)

	if ui.window.Title() != "Video Compressor" {
		t.Errorf("title = %q", ui.window.Title())
	}
	if ui.selectBtn.Text != "Select Video file" {
		t.Errorf("select button = %q", ui.selectBtn.Text)
	}
	if statusText(t, ui) != "" {
		t.Errorf("status should start empty")
	}
	if ui.revealBtn.Visible() {
		t.Error("reveal button should start hidden")
	}
	if compressor.callback == nil {
		t.Error("update callback should be registered")
	}
}

func TestOnProfileChosen_StartsJob(t *testing.T) {
	tests := []struct {
		name    string
		profile compress.Profile
	}{
		{"extreme", compress.Extreme},
		{"medium", compress.Medium},
		{"fast", compress.Fast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, compressor := newTestUI(t)

			ui.onProfileChosen("/videos/clip.mov", "/videos/clip.mp4", tt.name)

			if got := statusText(t, ui); got != tt.profile.StartMessage() {
				t.Errorf("status = %q, expected %q", got, tt.profile.StartMessage())
			}
			if len(compressor.started) != 1 {
				t.Fatalf("expected 1 job, got %d", len(compressor.started))
			}
			req := compressor.started[0]
			if req.InputPath != "/videos/clip.mov" || req.OutputPath != "/videos/clip.mp4" || req.Profile != tt.profile {
				t.Errorf("request = %+v", req)
			}
			if compressor.sinks[0] != compress.StatusSink(ui.status) {
				t.Error("job should write to the bound status")
			}
		})
	}
}

func TestOnProfileChosen_InvalidProfile(t *testing.T) {
	ui, compressor := newTestUI(t)

	ui.onProfileChosen("/videos/clip.mov", "/videos/clip.mp4", "ultra")

	if len(compressor.started) != 0 {
		t.Error("invalid profile must not start a job")
	}
	if statusText(t, ui) != "" {
		t.Error("status must stay untouched")
	}
}

func TestStatusReflectsJobWrites(t *testing.T) {
	ui, compressor := newTestUI(t)

	ui.onProfileChosen("/videos/clip.mov", "/videos/clip.mp4", "medium")
	_ = compressor.sinks[0].Set("An error occurred: broken input")

	if got := statusText(t, ui); got != "An error occurred: broken input" {
		t.Errorf("status = %q", got)
	}
}

func TestOnTaskUpdate_RevealButton(t *testing.T) {
	ui, compressor := newTestUI(t)

	compressor.callback(model.CompressionTask{Status: model.TaskStatusRunning, OutputPath: "/videos/clip.mp4"})
	if ui.revealBtn.Visible() {
		t.Error("reveal button should stay hidden while running")
	}

	compressor.callback(model.CompressionTask{Status: model.TaskStatusCompleted, OutputPath: "/videos/clip.mp4"})
	if !ui.revealBtn.Visible() || ui.revealPath != "/videos/clip.mp4" {
		t.Errorf("reveal button visible=%v path=%q", ui.revealBtn.Visible(), ui.revealPath)
	}

	compressor.callback(model.CompressionTask{Status: model.TaskStatusError, OutputPath: "/videos/other.mp4"})
	if ui.revealBtn.Visible() || ui.revealPath != "" {
		t.Error("reveal button should hide after a failed job")
	}
}

func TestOnRevealClick(t *testing.T) {
	ui, compressor := newTestUI(t)

	var opened []string
	ui.openInManager = func(path string) error {
		opened = append(opened, path)
		return nil
	}

	ui.onRevealClick()
	if len(opened) != 0 {
		t.Error("nothing to reveal before a job completes")
	}

	compressor.callback(model.CompressionTask{Status: model.TaskStatusCompleted, OutputPath: "/videos/clip.mp4"})
	test.Tap(ui.revealBtn)

	if len(opened) != 1 || opened[0] != "/videos/clip.mp4" {
		t.Errorf("opened = %v", opened)
	}
}

func TestOnPlayClick(t *testing.T) {
	ui, compressor := newTestUI(t)

	var played []string
	ui.openWithApp = func(path string) error {
		played = append(played, path)
		return nil
	}

	compressor.callback(model.CompressionTask{Status: model.TaskStatusCompleted, OutputPath: "/videos/clip.mp4"})
	if !ui.playBtn.Visible() {
		t.Fatal("open button should show after completion")
	}
	test.Tap(ui.playBtn)

	if len(played) != 1 || played[0] != "/videos/clip.mp4" {
		t.Errorf("played = %v", played)
	}

	ui.onProfileChosen("/videos/next.mov", "/videos/next.mp4", "fast")
	if ui.playBtn.Visible() || ui.revealBtn.Visible() {
		t.Error("result buttons should hide when a new job starts")
	}
}

func TestOnLanguageChange(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.onLanguageChange(LangPortuguese)

	if ui.selectBtn.Text != "Selecionar arquivo de vídeo" {
		t.Errorf("select button = %q", ui.selectBtn.Text)
	}
	if ui.playBtn.Text != IconPlay+" Abrir vídeo" {
		t.Errorf("open button = %q", ui.playBtn.Text)
	}
	if ui.window.Title() != "Compressor de Vídeo" {
		t.Errorf("title = %q", ui.window.Title())
	}
	if ui.window.MainMenu() == nil {
		t.Error("menu should be rebuilt")
	}
}

func TestShowProfileChooser(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.showProfileChooser("/videos/clip.mov", "/videos/clip.mp4")
	if ui.profileDialog == nil {
		t.Fatal("profile dialog should be created")
	}
	ui.profileDialog.Hide()
}
