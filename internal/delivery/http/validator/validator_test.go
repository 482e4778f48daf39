package validator

import (
	"testing"

	domainerrors "taskhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidate_Success(t *testing.T) {
	cv := New()

	err := cv.Validate(&sampleRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
}

func TestValidate_Failure(t *testing.T) {
	cv := New()

	err := cv.Validate(&sampleRequest{Email: "not-an-email", Password: "short"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
