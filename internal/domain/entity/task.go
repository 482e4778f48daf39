// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item belonging to exactly one user. UserID is set
// once at creation, to the authenticated caller, and is never reassignable.
type Task struct {
	ID        uuid.UUID  // The unique identifier for the task.
	UserID    uuid.UUID  // The owning user. Immutable after creation.
	Title     string     // Short description of the task.
	Status    TaskStatus // Current state; defaults to pending when omitted at creation.
	CreatedAt time.Time  // Timestamp of when this task was created.
	UpdatedAt time.Time  // Timestamp of the last modification to this task.
}
