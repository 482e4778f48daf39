// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface. Every operation scopes its
// reads and writes to the authenticated caller: listing filters by owner, and
// single-task access checks existence before ownership so a missing task and a
// foreign task fail differently.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns every task owned by the caller, newest first. Tasks of
// other users never appear in the result.
func (srv *taskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// CreateTask creates a task owned by the caller. The owner comes from the
// authenticated identity, never from the input, and an empty status defaults
// to pending.
func (srv *taskService) CreateTask(ctx context.Context, userID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	status := input.Status
	if status == "" {
		status = entity.TaskStatusPending
	}

	task := &entity.Task{
		UserID: userID,
		Title:  input.Title,
		Status: status,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Any("taskID", task.ID), slog.Any("userID", userID))

	return task, nil
}

// GetTask returns a single task after the existence/ownership gate.
func (srv *taskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.loadOwnedTask(ctx, srv.taskRepo, userID, taskID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask patches title and/or status of a task the caller owns. The gate
// and the write share one short transaction so a concurrent delete cannot
// slip between them.
func (srv *taskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, patch *usecase.UpdateTaskInput) (*entity.Task, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}

	var updated *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := srv.loadOwnedTask(ctx, taskRepo, userID, taskID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return errors.Wrap(err, "failed to update task")
		}

		updated = task

		return nil
	})
	if err != nil {
		if isTaskGateError(err) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to execute task update transaction", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute task update transaction")
	}

	srv.log(ctx).Debug("Task updated", slog.Any("taskID", taskID), slog.Any("userID", userID))

	return updated, nil
}

// DeleteTask permanently removes a task the caller owns.
func (srv *taskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		if _, err := srv.loadOwnedTask(ctx, taskRepo, userID, taskID); err != nil {
			return err
		}

		if err := taskRepo.Delete(ctx, taskID); err != nil {
			return errors.Wrap(err, "failed to delete task")
		}

		return nil
	})
	if err != nil {
		if isTaskGateError(err) {
			return err
		}

		srv.log(ctx).Error("Failed to execute task delete transaction", slog.Any("taskID", taskID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute task delete transaction")
	}

	srv.log(ctx).Debug("Task deleted", slog.Any("taskID", taskID), slog.Any("userID", userID))

	return nil
}

// loadOwnedTask fetches a task and applies the two-step gate: an unknown id
// fails with not-found, an existing task owned by someone else with forbidden.
// The order matters; it must not be possible to probe foreign task ids apart
// from ids that never existed by comparing error codes the other way around.
func (srv *taskService) loadOwnedTask(ctx context.Context, taskRepo repository.TaskRepository, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task not found")
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	if task.UserID != userID {
		srv.log(ctx).Warn("Ownership check failed", slog.Any("taskID", taskID), slog.Any("userID", userID))

		return nil, domainerrors.ErrForbidden.WrapMessage("task belongs to another user")
	}

	return task, nil
}

// isTaskGateError reports whether err is one of the caller-facing gate
// outcomes that must pass through unwrapped by transaction context.
func isTaskGateError(err error) bool {
	return errors.Is(err, domainerrors.ErrTaskNotFound) ||
		errors.Is(err, domainerrors.ErrForbidden) ||
		errors.Is(err, domainerrors.ErrValidationFailed)
}
