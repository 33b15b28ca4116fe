package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"kanbanase/internal/apperr"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_TaggedError(t *testing.T) {
	err := apperr.NotFound("Board not found")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Board not found", apperr.MessageOf(err))
}

func TestKindOf_WrappedError(t *testing.T) {
	// The kind tag survives fmt.Errorf wrapping
	inner := apperr.Conflict("Email already exists")
	err := fmt.Errorf("register: %w", inner)

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "Email already exists", apperr.MessageOf(err))
}

func TestKindOf_UntaggedError(t *testing.T) {
	err := errors.New("connection refused")

	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.Equal(t, "internal server error", apperr.MessageOf(err))
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := apperr.Wrap(apperr.KindConflict, "Email already exists", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Email already exists: duplicate key value", err.Error())
}
