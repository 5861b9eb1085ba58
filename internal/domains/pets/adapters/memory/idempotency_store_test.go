package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/domains/pets/ports"
)

func TestIdempotencyStore_SaveReplayAndConflict(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewIdempotencyStore(func() time.Time { return fixed })
	ctx := context.Background()

	saved, err := store.Save(ctx, ports.IdempotencyRecord{Key: "k1", RequestHash: "h1", PetID: 1})
	require.NoError(t, err)
	assert.Equal(t, fixed, saved.CreatedAt)

	replayed, err := store.Save(ctx, ports.IdempotencyRecord{Key: "k1", RequestHash: "h1", PetID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), replayed.PetID)

	existing, err := store.Save(ctx, ports.IdempotencyRecord{Key: "k1", RequestHash: "h2", PetID: 2})
	assert.ErrorIs(t, err, ports.ErrIdempotencyConflict)
	assert.Equal(t, int64(1), existing.PetID)
}

func TestIdempotencyStore_GetAndForget(t *testing.T) {
	store := NewIdempotencyStore()
	ctx := context.Background()

	missing, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = store.Save(ctx, ports.IdempotencyRecord{Key: "k1", RequestHash: "h1", PetID: 3})
	require.NoError(t, err)
	record, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.PetID)

	require.NoError(t, store.Forget(ctx, "k1"))
	record, err = store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Nil(t, record)
}
