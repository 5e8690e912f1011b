package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statesman/store/memory"
)

func TestStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("latest state of unknown model", func(t *testing.T) {
		t.Parallel()
		store := memory.New[string, string]()

		state, ok, err := store.LatestState(ctx, "order-1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, state)
	})

	t.Run("latest state follows last record", func(t *testing.T) {
		t.Parallel()
		store := memory.New[string, string]()

		require.NoError(t, store.RecordTransition(ctx, "order-1", "pending", "confirmed"))
		require.NoError(t, store.RecordTransition(ctx, "order-1", "confirmed", "cancelled"))

		state, ok, err := store.LatestState(ctx, "order-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "cancelled", state)
	})

	t.Run("histories are per model", func(t *testing.T) {
		t.Parallel()
		store := memory.New[string, string]()

		require.NoError(t, store.RecordTransition(ctx, "order-1", "pending", "confirmed"))

		_, ok, err := store.LatestState(ctx, "order-2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("history returns records in order", func(t *testing.T) {
		t.Parallel()
		store := memory.New[string, string]()

		require.NoError(t, store.RecordTransition(ctx, "order-1", "pending", "confirmed"))
		require.NoError(t, store.RecordTransition(ctx, "order-1", "confirmed", "cancelled"))

		history := store.History("order-1")
		require.Len(t, history, 2)
		assert.Equal(t, "pending", history[0].From)
		assert.Equal(t, "confirmed", history[0].To)
		assert.Equal(t, "cancelled", history[1].To)
		assert.NotEqual(t, history[0].ID, history[1].ID)
	})

	t.Run("concurrent records do not race", func(t *testing.T) {
		t.Parallel()
		store := memory.New[string, string]()

		var wg sync.WaitGroup
		for n := 0; n < 50; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.RecordTransition(ctx, "order-1", "pending", "confirmed")
				_, _, _ = store.LatestState(ctx, "order-1")
			}()
		}
		wg.Wait()

		assert.Len(t, store.History("order-1"), 50)
	})
}
