package model

// TaskStatus represents the status of a compression task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but ffmpeg has not been started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRunning means ffmpeg is running
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusCompleted means ffmpeg exited successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means ffmpeg could not be started or exited with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true while ffmpeg is running
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusRunning
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
