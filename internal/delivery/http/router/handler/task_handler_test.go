package handler

import (
	"net/http"
	"testing"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	mockUC "taskhub/internal/mocks/usecase"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setTaskPath(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func TestTaskHandler_List(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()

	uc.On("ListTasks", mock.Anything, userID).Return([]*entity.Task{
		{ID: uuid.New(), UserID: userID, Title: "buy milk", Status: entity.TaskStatusPending},
	}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/tasks", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "buy milk")
}

func TestTaskHandler_List_Empty(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()

	uc.On("ListTasks", mock.Anything, userID).Return([]*entity.Task{}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/tasks", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
}

func TestTaskHandler_Create(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()
	taskID := uuid.New()

	uc.On("CreateTask", mock.Anything, userID, &usecase.CreateTaskInput{Title: "buy milk"}).
		Return(&entity.Task{ID: taskID, UserID: userID, Title: "buy milk", Status: entity.TaskStatusPending}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/tasks", `{"title":"buy milk"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/tasks", `{"status":"pending"}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Create(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	uc.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_Get(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()
	taskID := uuid.New()

	uc.On("GetTask", mock.Anything, userID, taskID).
		Return(&entity.Task{ID: taskID, UserID: userID, Title: "buy milk", Status: entity.TaskStatusPending}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/tasks/"+taskID.String(), "")
	c.Set(middleware.ContextKeyUserID, userID)
	setTaskPath(c, taskID.String())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskHandler_Get_InvalidID(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())

	c, _ := newJSONContext(http.MethodGet, "/api/tasks/not-a-uuid", "")
	c.Set(middleware.ContextKeyUserID, uuid.New())
	setTaskPath(c, "not-a-uuid")

	// An unparseable id behaves like one that does not exist.
	err := h.Get(c)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
	uc.AssertNotCalled(t, "GetTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_Get_ForeignOwner(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()
	taskID := uuid.New()

	uc.On("GetTask", mock.Anything, userID, taskID).
		Return(nil, domainerrors.ErrForbidden.WrapMessage("task belongs to another user"))

	c, _ := newJSONContext(http.MethodGet, "/api/tasks/"+taskID.String(), "")
	c.Set(middleware.ContextKeyUserID, userID)
	setTaskPath(c, taskID.String())

	err := h.Get(c)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTaskHandler_Update(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()
	taskID := uuid.New()

	uc.On("UpdateTask", mock.Anything, userID, taskID, mock.AnythingOfType("*usecase.UpdateTaskInput")).
		Run(func(args mock.Arguments) {
			patch := args.Get(3).(*usecase.UpdateTaskInput)
			require.NotNil(t, patch.Status)
			assert.Equal(t, entity.TaskStatusCompleted, *patch.Status)
			assert.Nil(t, patch.Title)
		}).
		Return(&entity.Task{ID: taskID, UserID: userID, Title: "buy milk", Status: entity.TaskStatusCompleted}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/tasks/"+taskID.String(), `{"status":"completed"}`)
	c.Set(middleware.ContextKeyUserID, userID)
	setTaskPath(c, taskID.String())

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestTaskHandler_Delete(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()
	taskID := uuid.New()

	uc.On("DeleteTask", mock.Anything, userID, taskID).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/tasks/"+taskID.String(), "")
	c.Set(middleware.ContextKeyUserID, userID)
	setTaskPath(c, taskID.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task deleted successfully")
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(uc, newTestLogger())
	userID := uuid.New()
	taskID := uuid.New()

	uc.On("DeleteTask", mock.Anything, userID, taskID).
		Return(domainerrors.ErrTaskNotFound.WrapMessage("task not found"))

	c, _ := newJSONContext(http.MethodDelete, "/api/tasks/"+taskID.String(), "")
	c.Set(middleware.ContextKeyUserID, userID)
	setTaskPath(c, taskID.String())

	err := h.Delete(c)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}
