package config

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Compression != DefaultCompression {
		t.Errorf("Compression = %s, expected %s", opts.Compression, DefaultCompression)
	}
	if opts.GUI {
		t.Error("GUI should be off by default")
	}
	if opts.Input != "" || opts.Output != "" {
		t.Errorf("paths should be empty, got %+v", opts)
	}
}

func TestBindFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: Options{Compression: "medium"},
		},
		{
			name:     "short flags",
			args:     []string{"-i", "clip.mov", "-o", "clip.mp4", "-c", "fast"},
			expected: Options{Input: "clip.mov", Output: "clip.mp4", Compression: "fast"},
		},
		{
			name:     "long flags",
			args:     []string{"--input=a.mkv", "--output=b.mp4", "--compression=extreme"},
			expected: Options{Input: "a.mkv", Output: "b.mp4", Compression: "extreme"},
		},
		{
			name:     "gui",
			args:     []string{"--gui"},
			expected: Options{Compression: "medium", GUI: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			opts.BindFlags(fs)

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if opts != tt.expected {
				t.Errorf("options = %+v, expected %+v", opts, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr []error
	}{
		{"complete", Options{Input: "a.mov", Output: "a.mp4"}, nil},
		{"missing input", Options{Output: "a.mp4"}, []error{ErrMissingInput}},
		{"missing output", Options{Input: "a.mov"}, []error{ErrMissingOutput}},
		{"blank paths", Options{Input: "  ", Output: ""}, []error{ErrMissingInput, ErrMissingOutput}},
		{"gui ignores paths", Options{GUI: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, expected to match %v", err, want)
				}
			}
		})
	}
}
