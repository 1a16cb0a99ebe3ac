package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Emit(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps id and timestamp", func(t *testing.T) {
		store := NewMemoryStore()
		pub := NewPublisher(store)

		err := pub.Emit(ctx, Event{
			InputDigest: DigestInput("510108197205052137"),
			Outcome:     "valid",
		})
		require.NoError(t, err)

		events := store.Events()
		require.Len(t, events, 1)
		assert.NotEqual(t, uuid.Nil, events[0].ID)
		assert.False(t, events[0].Timestamp.IsZero())
		assert.Equal(t, "valid", events[0].Outcome)
	})

	t.Run("preserves caller-set fields", func(t *testing.T) {
		store := NewMemoryStore()
		pub := NewPublisher(store)

		id := uuid.New()
		ts := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
		err := pub.Emit(ctx, Event{ID: id, Timestamp: ts, Outcome: "length_mismatch"})
		require.NoError(t, err)

		events := store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, ts, events[0].Timestamp)
	})
}

func TestDigestInput(t *testing.T) {
	a := DigestInput("510108197205052137")
	b := DigestInput("510108197205052137")
	c := DigestInput("110108199001010015")

	assert.Equal(t, a, b, "digest must be deterministic")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
	assert.NotContains(t, a, "510108", "digest must not leak the raw input")
}

func TestMemoryStore_CopyOnRead(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Append(context.Background(), Event{Outcome: "valid"}))

	events := store.Events()
	events[0].Outcome = "mutated"

	assert.Equal(t, "valid", store.Events()[0].Outcome)
}
