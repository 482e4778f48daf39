// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task. The owner is
// never part of the input: it is forced to the authenticated caller.
type CreateTaskInput struct {
	Title  string
	Status entity.TaskStatus // Optional; defaults to pending when empty.
}

// UpdateTaskInput is a partial patch for a task. Only title and status are
// patchable; an owner field supplied by the caller is ignored by design.
type UpdateTaskInput struct {
	Title  *string
	Status *entity.TaskStatus
}

// TaskUsecase defines the interface for ownership-enforced task operations.
// Every method takes the authenticated caller's user id explicitly and only
// ever reads or mutates tasks owned by that identity.
type TaskUsecase interface {
	// ListTasks returns the caller's tasks, and only the caller's tasks.
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// CreateTask creates a task owned by the caller.
	CreateTask(ctx context.Context, userID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)

	// GetTask returns a single task. Unknown id fails with not-found; an
	// existing task owned by someone else fails with forbidden.
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)

	// UpdateTask patches title/status under the same existence/ownership gate as GetTask.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, patch *UpdateTaskInput) (*entity.Task, error)

	// DeleteTask permanently removes a task under the same gate.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}
