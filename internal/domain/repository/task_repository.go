// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
// Ownership decisions live in the usecase layer; the repository only offers
// lookups precise enough for the usecase to tell "absent" from "foreign".
type TaskRepository interface {
	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a single task by its unique ID regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByUserID retrieves all tasks owned by the given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// Update persists modified task fields.
	Update(ctx context.Context, task *entity.Task) error

	// Delete permanently removes a task by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
