package model

import (
	"path/filepath"
	"strings"
	"time"
)

// CompressionTask represents a single ffmpeg invocation
type CompressionTask struct {
	ID         string
	InputPath  string
	OutputPath string
	Profile    string // extreme, medium or fast
	Status     TaskStatus
	LastError  string // ffmpeg diagnostic if the run failed
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the task ran, or zero if it has not finished
func (ct *CompressionTask) Elapsed() time.Duration {
	if ct.StartedAt.IsZero() || ct.FinishedAt.IsZero() {
		return 0
	}
	return ct.FinishedAt.Sub(ct.StartedAt)
}

// GetDisplayTitle returns the output file name without extension, falling back to the input
func (ct *CompressionTask) GetDisplayTitle() string {
	for _, p := range []string{ct.OutputPath, ct.InputPath} {
		if p == "" {
			continue
		}
		// Support both / and \ separators regardless of host OS
		name := filepath.Base(strings.ReplaceAll(p, "\\", "/"))
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}
	return ""
}
