package compress

import (
	"context"

	"github.com/cameronspears/vidsquid/internal/model"
)

// Compressor defines the interface for the compression service.
type Compressor interface {
	SetUpdateCallback(func(model.CompressionTask))
	Compress(ctx context.Context, req Request, sink StatusSink) (*model.CompressionTask, error)
	Start(req Request, sink StatusSink) *Job
	GetTask(taskID string) (model.CompressionTask, bool)
}

var _ Compressor = (*Service)(nil)
