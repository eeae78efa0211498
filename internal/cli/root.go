package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cameronspears/vidsquid/internal/compress"
	"github.com/cameronspears/vidsquid/internal/config"
	"github.com/cameronspears/vidsquid/internal/platform"
)

// Command metadata
const (
	CommandName  = "vidsquid"
	CommandShort = "Compress video files to MP4 using ffmpeg"
)

// MissingToolsMessage is printed when the startup tool check fails
const MissingToolsMessage = "ffmpeg and/or ffprobe not found in system PATH. Please install them or provide their paths."

// ErrNoGUI is returned when --gui is requested but no launcher is wired
var ErrNoGUI = errors.New("graphical interface is not available")

// ToolchainResolver finds the external tools at startup
type ToolchainResolver interface {
	ResolveToolchain() (platform.Toolchain, error)
}

// GUILauncher runs the interactive mode until its window closes
type GUILauncher func(compress.Compressor) error

// App wires the command line to the compression service
type App struct {
	Version       string
	Locator       ToolchainResolver
	NewCompressor func(platform.Toolchain) compress.Compressor
	LaunchGUI     GUILauncher
	Stdout        io.Writer
	Stderr        io.Writer
}

// NewApp creates an App bound to the process environment
func NewApp(version string, launchGUI GUILauncher) *App {
	return &App{
		Version: version,
		Locator: platform.NewLocator(),
		NewCompressor: func(tools platform.Toolchain) compress.Compressor {
			return compress.NewService(tools)
		},
		LaunchGUI: launchGUI,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// Execute parses args and runs the selected mode
func (a *App) Execute(args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil && !Reported(err) {
		fmt.Fprintln(a.Stderr, "Error:", err)
		fmt.Fprint(a.Stderr, cmd.UsageString())
		return &exitError{code: ExitUsage, err: err}
	}
	return err
}

// Command builds the root cobra command
func (a *App) Command() *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:           CommandName,
		Short:         CommandShort,
		Version:       a.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts)
		},
	}
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	opts.BindFlags(cmd.Flags())

	return cmd
}

func (a *App) run(cmd *cobra.Command, opts config.Options) error {
	tools, err := a.Locator.ResolveToolchain()
	if err != nil {
		fmt.Fprintln(a.Stderr, MissingToolsMessage)
		var missing *platform.MissingToolsError
		if errors.As(err, &missing) {
			fmt.Fprintf(a.Stderr, "Missing: %s\n", strings.Join(missing.Names, ", "))
		}
		return &exitError{code: ExitFailure, err: err}
	}
	log.Printf("Using ffmpeg at %s, ffprobe at %s", tools.FFmpeg, tools.FFprobe)

	compressor := a.NewCompressor(tools)

	if opts.GUI {
		return a.runGUI(compressor)
	}
	return a.runBatch(cmd, opts, compressor)
}

func (a *App) runGUI(compressor compress.Compressor) error {
	if a.LaunchGUI == nil {
		fmt.Fprintln(a.Stderr, "Error:", ErrNoGUI)
		return &exitError{code: ExitFailure, err: ErrNoGUI}
	}
	if err := a.LaunchGUI(compressor); err != nil {
		fmt.Fprintln(a.Stderr, "Error:", err)
		return &exitError{code: ExitFailure, err: fmt.Errorf("run gui: %w", err)}
	}
	return nil
}

func (a *App) runBatch(cmd *cobra.Command, opts config.Options, compressor compress.Compressor) error {
	profile, err := compress.ParseProfile(opts.Compression)
	if err != nil {
		fmt.Fprintln(a.Stderr, "Error:", err)
		fmt.Fprint(a.Stderr, cmd.UsageString())
		return &exitError{code: ExitUsage, err: err}
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprint(a.Stderr, cmd.UsageString())
		return &exitError{code: ExitFailure, err: err}
	}

	sink := compress.NewWriterSink(a.Stdout)
	compress.PublishStatus(sink, profile.StartMessage())

	req := compress.Request{
		InputPath:  opts.Input,
		OutputPath: opts.Output,
		Profile:    profile,
	}
	if _, err := compressor.Compress(cmd.Context(), req, sink); err != nil {
		// ffmpeg failures were already published through the sink
		var toolErr *compress.ToolError
		if !errors.As(err, &toolErr) {
			fmt.Fprintln(a.Stderr, "Error:", err)
		}
		return &exitError{code: ExitFailure, err: err}
	}
	return nil
}
