package compress

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// StatusSink receives whole status messages; the last write wins.
// fyne's binding.String satisfies it directly.
type StatusSink interface {
	Set(string) error
}

// StatusCell is an in-memory StatusSink safe for concurrent use.
type StatusCell struct {
	value atomic.Value
}

// Set replaces the current status
func (c *StatusCell) Set(status string) error {
	c.value.Store(status)
	return nil
}

// Get returns the current status, empty if never set
func (c *StatusCell) Get() string {
	if v, ok := c.value.Load().(string); ok {
		return v
	}
	return ""
}

// WriterSink prints each status as a line, for the command-line surface.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Set writes status followed by a newline
func (s *WriterSink) Set(status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, status)
	return err
}
