package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/logger"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
)

// TaskService handles task management scoped to the authenticated caller.
// Reads go through the store's owner-filtered queries and every loaded
// record is additionally checked against the caller before it is acted on,
// so a task belonging to another account behaves exactly like a missing
// one.
type TaskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a TaskService with the given collaborators.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) (*TaskService, error) {
	if taskStore == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_service")),
	}, nil
}

// Create creates a task owned by the caller. The owner is always the
// caller regardless of what the request carried.
func (s *TaskService) Create(ctx context.Context, callerID uuid.UUID, title, description string, status domain.TaskStatus) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(callerID, title, description, status)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", callerID.String()))
	return task, nil
}

// Get returns the caller's task identified by id. A task owned by another
// account is reported as not found.
func (s *TaskService) Get(ctx context.Context, callerID, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetForUser(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if !IsOwner(task, callerID) {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// List returns the caller's tasks, newest first. An empty status lists
// all of them; otherwise only tasks in that status are returned.
func (s *TaskService) List(ctx context.Context, callerID uuid.UUID, status domain.TaskStatus) ([]*domain.Task, error) {
	return s.taskStore.List(ctx, callerID, status)
}

// TaskUpdate carries the optional fields of a task update. Nil fields are
// left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// Update applies the given changes to the caller's task identified by id.
func (s *TaskService) Update(ctx context.Context, callerID, id uuid.UUID, update TaskUpdate) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.Get(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		if err := task.UpdateStatus(*update.Status); err != nil {
			return nil, err
		}
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "task updated",
		slog.String("task_id", task.ID.String()))
	return task, nil
}

// Delete removes the caller's task identified by id.
func (s *TaskService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.Get(ctx, callerID, id)
	if err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, task.ID); err != nil {
		return err
	}

	log.InfoContext(ctx, "task deleted",
		slog.String("task_id", task.ID.String()))
	return nil
}
