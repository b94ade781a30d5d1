//go:build unit

package errs_test

import (
	"strings"
	"testing"

	"flashmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Parallel()

	sentinel := errs.New("insufficient stock")

	t.Run("mark is visible to errors.Is", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.Newf("stock for product %s: want 3, have 1", "p1"), sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		t.Parallel()
		cause := errs.New("row vanished")
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("message comes from the cause", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.New("version moved from 3 to 4"), sentinel)
		assert.Equal(t, "version moved from 3 to 4", err.Error())
	})

	t.Run("wrapping a marked error keeps the mark", func(t *testing.T) {
		t.Parallel()
		err := errs.Wrap(errs.Mark(errs.New("conditional update hit zero rows"), sentinel), "place order")
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nil cause falls back to the mark", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(nil, sentinel)
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("verbose format keeps the cause stack", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.New("boom"), sentinel)
		lines := errs.ExtractStackLines(err, 0)
		require.NotEmpty(t, lines)
		assert.True(t, strings.Contains(strings.Join(lines, "\n"), "boom"))
	})
}
