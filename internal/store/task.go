package store

import (
	"context"
	"database/sql"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/google/uuid"
)

// TaskStore defines the interface for task data persistence.
//
// List and GetForUser are pre-filtered to a single owner: handing the
// caller's ID to the store keeps non-owned rows out of results before any
// object-level authorization check runs.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID regardless of owner.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetForUser retrieves a task by ID scoped to the given owner.
	// Returns ErrTaskNotFound if no task with that ID belongs to the user.
	GetForUser(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// List returns the user's tasks ordered by creation time, most recent
	// first. A non-empty status narrows the result to tasks with that
	// status. Returns an empty slice when nothing matches.
	List(ctx context.Context, userID uuid.UUID, status domain.TaskStatus) ([]*domain.Task, error)

	// Update modifies an existing task. The owner reference is never
	// changed by an update.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
