// Package entity contains the core business objects of the project.
package entity

// TaskStatus represents the state of a task. The well-known values below are
// what the client UI renders, but free-form values are accepted and stored
// as-is; pending is only the default applied when a new task omits the field.
type TaskStatus string

const (
	// TaskStatusPending is the default state for newly created tasks.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusInProgress indicates work on the task has started.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusCompleted indicates the task is done.
	TaskStatusCompleted TaskStatus = "completed"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsKnown reports whether the status is one of the well-known values.
func (s TaskStatus) IsKnown() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}
