package compress

import (
	"context"

	"github.com/cameronspears/vidsquid/internal/model"
)

// Job is a compression running on its own goroutine.
// Jobs are independent; nothing orders overlapping jobs or their status writes.
type Job struct {
	done chan struct{}
	task *model.CompressionTask
	err  error
}

// Done is closed when the job finishes
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job finishes and returns its outcome
func (j *Job) Wait() (*model.CompressionTask, error) {
	<-j.done
	return j.task, j.err
}

// Start runs Compress in the background and returns immediately.
// There is no cancellation; the job lives until ffmpeg exits.
func (s *Service) Start(req Request, sink StatusSink) *Job {
	job := &Job{done: make(chan struct{})}
	go func() {
		defer close(job.done)
		job.task, job.err = s.Compress(context.Background(), req, sink)
	}()
	return job
}
