package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromCode(t *testing.T) {
	assert.Equal(t, 400, New(ErrCodeInvalidPrice, "x").HTTPStatus())
	assert.Equal(t, 422, New(ErrCodeUserIDDuplicate, "x").HTTPStatus())
	assert.Equal(t, 404, New(ErrCodeCustomerNotFound, "x").HTTPStatus())
	assert.Equal(t, 500, New(ErrCodeDatabaseError, "x").HTTPStatus())
	assert.Equal(t, 500, Wrap(errors.New("io"), "x").HTTPStatus())
}

func TestIsMatchesByCode(t *testing.T) {
	notFound := New(ErrCodeBookNotFound, "Book not found.")
	wrapped := fmt.Errorf("lookup: %w", notFound)

	assert.True(t, errors.Is(wrapped, notFound))
	assert.False(t, errors.Is(wrapped, New(ErrCodeCustomerNotFound, "Customer not found.")))
	assert.True(t, IsKind(wrapped, KindNotFound))
}

func TestGetAppError(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := GetAppError(cause)

	assert.Equal(t, ErrCodeInternal, appErr.Code)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.ErrorIs(t, appErr, cause)

	conflict := WithCode(ErrCodeISBNDuplicate, cause, "This ISBN already exists in the system.")
	assert.Same(t, conflict, GetAppError(conflict))
	assert.Equal(t, KindConflict, conflict.Kind)
	assert.True(t, IsAppError(conflict))
	assert.False(t, IsAppError(cause))
}
