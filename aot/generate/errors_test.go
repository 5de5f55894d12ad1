package generate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassConflictError(t *testing.T) {
	t.Run("Error message names label and class", func(t *testing.T) {
		err := NewClassConflictError("Inner__BeanDefinitions", "github.com/acme/app.Outer__BeanDefinitions", "different configuration")
		assert.Contains(t, err.Error(), "generate: conflicting class")
		assert.Contains(t, err.Error(), "Inner__BeanDefinitions")
		assert.Contains(t, err.Error(), "Outer__BeanDefinitions")
		assert.Contains(t, err.Error(), "different configuration")
	})

	t.Run("Is matches ErrClassConflict", func(t *testing.T) {
		err := NewClassConflictError("label", "class", "message")
		assert.True(t, errors.Is(err, ErrClassConflict))
	})

	t.Run("IsClassConflictError helper", func(t *testing.T) {
		err := NewClassConflictError("label", "class", "message")
		assert.True(t, IsClassConflictError(err))
		assert.False(t, IsClassConflictError(errors.New("other")))
	})
}

func TestWriteError(t *testing.T) {
	t.Run("Error message names file and cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := &WriteError{File: "out/app/orderservice__beandefinitions.go", Cause: cause}
		assert.Contains(t, err.Error(), "orderservice__beandefinitions.go")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &WriteError{File: "x.go", Cause: cause}
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, ErrWriteFailed))
	})
}
