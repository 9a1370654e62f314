//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parkgate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("invalid license plate")

	t.Run("marked error matches the sentinel via errors.Is", func(t *testing.T) {
		cause := errs.New("plate cannot be empty")
		marked := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, marked, sentinel)
		assert.ErrorIs(t, marked, cause)
	})

	t.Run("message stays the cause's", func(t *testing.T) {
		cause := errs.New("plate cannot be empty")
		marked := errs.Mark(cause, sentinel)

		assert.Equal(t, cause.Error(), marked.Error())
	})

	t.Run("wrapping above the mark keeps the match", func(t *testing.T) {
		cause := errs.New("plate cannot be empty")
		wrapped := errs.Wrap(errs.Mark(cause, sentinel), "validating entry request")

		assert.ErrorIs(t, wrapped, sentinel)
	})

	t.Run("nil cause falls back to the sentinel itself", func(t *testing.T) {
		marked := errs.Mark(nil, sentinel)

		require.Error(t, marked)
		assert.True(t, errors.Is(marked, sentinel))
	})
}
