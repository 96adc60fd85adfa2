package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/jhuntleyit/bookshelf/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "title",
			Message: "must not be empty",
		}
		assert.Equal(t, "validation failed for field title: must not be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid record",
		}
		assert.Equal(t, "validation failed: invalid record", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("author", "", "must not be empty")
		assert.Contains(t, err.Error(), "author")
		assert.Contains(t, err.Error(), "must not be empty")
	})
}

func TestDecodeError(t *testing.T) {
	t.Run("carries the offending line", func(t *testing.T) {
		err := pkgerrors.NewDecodeError("abc, Title, Author, Yes", "invalid id", nil)
		assert.Contains(t, err.Error(), `"abc, Title, Author, Yes"`)
		assert.True(t, pkgerrors.IsDecodeError(err))
	})

	t.Run("unwraps the cause", func(t *testing.T) {
		cause := errors.New("bad syntax")
		err := pkgerrors.NewDecodeError("x", "invalid id", cause)
		assert.Equal(t, cause, errors.Unwrap(err))
	})
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "library.csv", cause)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "library.csv")
	assert.Equal(t, cause, errors.Unwrap(err))

	t.Run("WrapIO passes nil through", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "library.csv", nil))
	})

	t.Run("WrapIO wraps non-nil", func(t *testing.T) {
		wrapped := pkgerrors.WrapIO("read", "library.csv", cause)
		var ioErr *pkgerrors.IOError
		require.ErrorAs(t, wrapped, &ioErr)
		assert.Equal(t, "read", ioErr.Operation)
	})
}

func TestNotFoundError(t *testing.T) {
	err := pkgerrors.NewNotFoundError("book", 999)
	assert.Equal(t, "book with ID 999 not found", err.Error())
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
}
