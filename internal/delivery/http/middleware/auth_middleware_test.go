package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockSvc "taskhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.On("Resolve", mock.Anything, "valid-token").Return(userID, nil)

	c, _ := newAuthTestContext(t, "Bearer valid-token")

	var nextCalled bool
	handler := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, "valid-token", c.Get(ContextKeyToken))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "")

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without credentials")

		return nil
	})

	err := handler(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthMiddleware_Authenticate_WrongScheme(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "Basic dXNlcjpwdw==")

	handler := mw.Authenticate(func(c echo.Context) error { return nil })

	err := handler(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthMiddleware_Authenticate_RevokedToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	tokenSvc.On("Resolve", mock.Anything, "revoked-token").
		Return(uuid.Nil, errors.Wrap(repository.ErrTokenNotFound, "failed to resolve access token"))

	c, _ := newAuthTestContext(t, "Bearer revoked-token")

	handler := mw.Authenticate(func(c echo.Context) error { return nil })

	// A revoked token fails exactly like one that never existed.
	err := handler(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
