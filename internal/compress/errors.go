package compress

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingPath is returned when the input or output path is empty.
var ErrMissingPath = errors.New("input and output paths are required")

// ErrSameFile is returned when the output would overwrite the input.
var ErrSameFile = errors.New("output file is the same as the input file")

// ToolError is an ffmpeg run that could not start or exited non-zero.
type ToolError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

// Error formats the failure for logs.
func (e *ToolError) Error() string {
	return fmt.Sprintf("ffmpeg failed (exit=%d): %s", e.ExitCode, e.Diagnostic())
}

// Unwrap exposes the process error for errors.Is / errors.As.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// Diagnostic returns ffmpeg's stderr, or the process error when stderr is empty.
func (e *ToolError) Diagnostic() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// ErrorMessage is the status text written for a failed run
func ErrorMessage(err error) string {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return "An error occurred: " + toolErr.Diagnostic()
	}
	return "An error occurred: " + err.Error()
}
