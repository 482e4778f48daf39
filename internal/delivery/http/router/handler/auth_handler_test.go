package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/delivery/http/validator"
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

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())
	userID := uuid.New()

	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}).Return(&usecase.RegisterOutput{
		User: &entity.User{
			ID:        userID,
			Name:      "Alice",
			Email:     "alice@example.com",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Token: "register-token",
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Contains(t, rec.Body.String(), "register-token")
	// The password hash never appears in a response.
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAuthHandler_Register_MissingPassword(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com"}`)

	err := h.Register(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_MalformedEmail(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/register",
		`{"name":"Alice","email":"not-an-email","password":"password123"}`)

	err := h.Register(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())
	userID := uuid.New()

	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
	}).Return(&usecase.LoginOutput{UserID: userID, Token: "login-token"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"password123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "login-token")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())

	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("password is incorrect"))

	c, _ := newJSONContext(http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"wrongpw"}`)

	err := h.Login(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthHandler_Logout_RevokesPresentingToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())

	uc.On("Logout", mock.Anything, "presenting-token").Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/api/logout", "")
	c.Set(middleware.ContextKeyToken, "presenting-token")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_NoToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/logout", "")

	err := h.Logout(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthHandler_Me(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())
	userID := uuid.New()

	uc.On("CurrentUser", mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "Alice", Email: "alice@example.com", PasswordHash: "secret-hash"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/user", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}
