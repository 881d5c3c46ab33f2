package ids

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticKeys struct {
	keys []int
	err  error
}

func (s staticKeys) Keys(context.Context) ([]int, error) {
	return s.keys, s.err
}

func TestMaxPlusOne_Next(t *testing.T) {
	alloc := NewMaxPlusOne()

	t.Run("empty collection starts at 1", func(t *testing.T) {
		id, err := alloc.Next(t.Context(), staticKeys{})
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("gaps are not reused", func(t *testing.T) {
		id, err := alloc.Next(t.Context(), staticKeys{keys: []int{1, 2, 7}})
		require.NoError(t, err)
		assert.Equal(t, 8, id)
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := alloc.Next(t.Context(), staticKeys{err: boom})
		require.ErrorIs(t, err, boom)
	})
}
