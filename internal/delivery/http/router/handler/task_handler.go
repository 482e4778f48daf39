package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createTaskRequest is the payload for task creation. The owner is taken from
// the bearer token, never from the body.
type createTaskRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Status string `json:"status" validate:"omitempty,max=64"`
}

// updateTaskRequest is a partial patch; absent fields keep their value.
type updateTaskRequest struct {
	Title  *string `json:"title" validate:"omitempty,max=255"`
	Status *string `json:"status" validate:"omitempty,max=64"`
}

// taskResponse is the outward shape of a task.
type taskResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toTaskResponse(task *entity.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		Status:    task.Status.String(),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// TaskHandler holds dependencies for task handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// callerID extracts the authenticated user's id placed by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("no identity on request")
	}

	return userID, nil
}

// taskID parses the :id path parameter. An unparseable id behaves exactly
// like an id that does not exist.
func taskID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrTaskNotFound.WithDetails("invalid task id")
	}

	return id, nil
}

// List returns the caller's tasks.
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, toTaskResponse(task))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Create creates a task owned by the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.CreateTask(c.Request().Context(), userID, &usecase.CreateTaskInput{
		Title:  req.Title,
		Status: entity.TaskStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// Get returns a single task the caller owns.
func (h *TaskHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.uc.GetTask(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "")
}

// Update patches title/status of a task the caller owns.
func (h *TaskHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patch := &usecase.UpdateTaskInput{Title: req.Title}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), userID, id, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// Delete permanently removes a task the caller owns.
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Task deleted successfully",
	}, "Task deleted successfully")
}
