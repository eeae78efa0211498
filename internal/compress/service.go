package compress

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cameronspears/vidsquid/internal/model"
	"github.com/cameronspears/vidsquid/internal/platform"
)

// Task ID prefix
const TaskIDPrefix = "compress-"

// Request is one input/output pair and the profile to apply.
type Request struct {
	InputPath  string
	OutputPath string
	Profile    Profile
}

// Validate checks presence of both paths and the profile; no media inspection happens.
func (r Request) Validate() error {
	if !PathPresent(r.InputPath) || !PathPresent(r.OutputPath) {
		return ErrMissingPath
	}
	if !r.Profile.IsValid() {
		return ErrInvalidProfile
	}
	if sameFile(r.InputPath, r.OutputPath) {
		return fmt.Errorf("%w: %s", ErrSameFile, r.OutputPath)
	}
	return nil
}

// PathPresent reports whether p names a path; blank strings do not
func PathPresent(p string) bool {
	return strings.TrimSpace(p) != ""
}

// sameFile reports whether both paths name the same file, existing or not
func sameFile(a, b string) bool {
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(infoA, infoB)
	}

	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// Service runs ffmpeg compressions
type Service struct {
	tools      platform.Toolchain
	runner     commandRunner
	remove     func(string) error
	tasks      map[string]*model.CompressionTask
	tasksMutex sync.RWMutex
	onUpdate   func(model.CompressionTask) // callback for UI updates
}

// NewService creates a compression service bound to a resolved toolchain
func NewService(tools platform.Toolchain) *Service {
	return &Service{
		tools:  tools,
		runner: &execRunner{},
		remove: os.Remove,
		tasks:  make(map[string]*model.CompressionTask),
	}
}

// newServiceForTests creates a service with an injected runner and remover.
func newServiceForTests(tools platform.Toolchain, runner commandRunner, remove func(string) error) *Service {
	s := NewService(tools)
	s.runner = runner
	s.remove = remove
	return s
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(model.CompressionTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// Compress runs exactly one ffmpeg invocation and writes exactly one terminal
// status to sink. Invalid requests fail before any process starts and leave
// the sink untouched.
func (s *Service) Compress(ctx context.Context, req Request, sink StatusSink) (*model.CompressionTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	args, err := req.Profile.BuildFFmpegArgs(req.InputPath, req.OutputPath)
	if err != nil {
		return nil, err
	}

	task := &model.CompressionTask{
		ID:         generateTaskID(),
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Profile:    req.Profile.String(),
		Status:     model.TaskStatusPending,
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	task.Status = model.TaskStatusRunning
	task.StartedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	// Only an output this run created may be cleaned up after a failure
	_, statErr := os.Stat(req.OutputPath)
	outputExisted := statErr == nil

	log.Printf("Task %s: %s %v", task.ID, s.tools.FFmpeg, args)
	result, runErr := s.runner.Run(ctx, s.tools.FFmpeg, args...)

	if runErr != nil {
		toolErr := &ToolError{
			Command:  s.tools.FFmpeg,
			Args:     args,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
			Err:      runErr,
		}
		s.finish(task, toolErr)
		PublishStatus(sink, ErrorMessage(toolErr))

		if !outputExisted {
			if err := s.remove(req.OutputPath); err != nil && !os.IsNotExist(err) {
				log.Printf("Task %s: failed to remove partial output %s: %v", task.ID, req.OutputPath, err)
			}
		}
		return s.snapshot(task), toolErr
	}

	s.finish(task, nil)
	PublishStatus(sink, req.Profile.SuccessMessage())
	return s.snapshot(task), nil
}

// GetTask returns a snapshot of a compression task by ID
func (s *Service) GetTask(taskID string) (model.CompressionTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	if !exists {
		return model.CompressionTask{}, false
	}
	return *task, true
}

// finish records the terminal state of a task
func (s *Service) finish(task *model.CompressionTask, err error) {
	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		log.Printf("Task %s failed: %v", task.ID, err)
	} else {
		task.Status = model.TaskStatusCompleted
	}
	task.FinishedAt = time.Now()
	if err == nil {
		log.Printf("Task %s completed in %s: %s", task.ID, task.Elapsed().Round(time.Millisecond), task.OutputPath)
	}
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// snapshot copies a task under the read lock
func (s *Service) snapshot(task *model.CompressionTask) *model.CompressionTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	copied := *task
	return &copied
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.CompressionTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	copied := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(copied)
	}
}

// PublishStatus writes to sink when one was provided, logging a rejected write
func PublishStatus(sink StatusSink, status string) {
	if sink == nil {
		return
	}
	if err := sink.Set(status); err != nil {
		log.Printf("failed to publish status %q: %v", status, err)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
