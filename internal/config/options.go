package config

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/cameronspears/vidsquid/internal/compress"
)

// Flag names
const (
	FlagInput       = "input"
	FlagOutput      = "output"
	FlagCompression = "compression"
	FlagGUI         = "gui"
)

// Default values
const (
	DefaultCompression = "medium"
	DefaultGUI         = false
)

// ErrMissingInput and ErrMissingOutput report an incomplete batch invocation.
var (
	ErrMissingInput  = errors.New("input file path is required (-i)")
	ErrMissingOutput = errors.New("output file path is required (-o)")
)

// Options holds one parsed invocation
type Options struct {
	Input       string
	Output      string
	Compression string
	GUI         bool
}

// DefaultOptions returns options with every default applied
func DefaultOptions() Options {
	return Options{
		Compression: DefaultCompression,
		GUI:         DefaultGUI,
	}
}

// BindFlags registers the invocation flags on fs
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Input, FlagInput, "i", o.Input, "input video file path")
	fs.StringVarP(&o.Output, FlagOutput, "o", o.Output, "output video file path")
	fs.StringVarP(&o.Compression, FlagCompression, "c", o.Compression, "compression level: extreme, medium or fast")
	fs.BoolVar(&o.GUI, FlagGUI, o.GUI, "launch the graphical interface (ignores -i, -o and -c)")
}

// Validate checks that batch mode has both paths. GUI mode needs nothing.
func (o Options) Validate() error {
	if o.GUI {
		return nil
	}

	var errs []error
	if !compress.PathPresent(o.Input) {
		errs = append(errs, ErrMissingInput)
	}
	if !compress.PathPresent(o.Output) {
		errs = append(errs, ErrMissingOutput)
	}
	return errors.Join(errs...)
}
