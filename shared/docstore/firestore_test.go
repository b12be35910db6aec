package docstore_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/otel/mocks"
	"hotel/shared/docstore"
)

// newEmulatorStore connects to the emulator named by FIRESTORE_EMULATOR_HOST,
// which the Firestore client picks up on its own.
func newEmulatorStore(t *testing.T) docstore.Store {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	client, err := firestore.NewClient(context.Background(), "hotel-test")
	require.NoError(t, err)

	store := docstore.NewFirestore(client, mocks.NewOtel())
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestFirestoreStore(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()
	collection := fmt.Sprintf("customers-%d", time.Now().UnixNano())

	key, err := store.Add(ctx, collection, map[string]any{"name": "Somchai", "nights": 2})
	require.NoError(t, err)
	require.NotEmpty(t, key)

	t.Run("List", func(t *testing.T) {
		docs, err := store.List(ctx, collection)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, key, docs[0].Key)
		assert.Equal(t, "Somchai", docs[0].Fields["name"])
		assert.NotContains(t, docs[0].Fields, "createdAt")
		assert.False(t, docs[0].CreatedAt.IsZero())
	})

	t.Run("Update", func(t *testing.T) {
		require.NoError(t, store.Update(ctx, collection, key, map[string]any{"name": "Suda"}))

		doc, found, err := store.Get(ctx, collection, key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Suda", doc.Fields["name"])
	})

	t.Run("UpdateMissingKey", func(t *testing.T) {
		err := store.Update(ctx, collection, "missing", map[string]any{"name": "Nobody"})
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, collection, key))

		_, found, err := store.Get(ctx, collection, key)
		require.NoError(t, err)
		assert.False(t, found)

		assert.ErrorIs(t, store.Delete(ctx, collection, key), docstore.ErrNotFound)
	})
}
