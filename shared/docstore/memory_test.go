package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/shared/docstore"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()

	first, err := store.Add(ctx, "customers", map[string]any{"name": "Somchai"})
	require.NoError(t, err)
	second, err := store.Add(ctx, "customers", map[string]any{"name": "Suda"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	t.Run("ListKeepsInsertionOrder", func(t *testing.T) {
		docs, err := store.List(ctx, "customers")
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, first, docs[0].Key)
		assert.Equal(t, second, docs[1].Key)
		assert.False(t, docs[0].CreatedAt.IsZero())

		again, err := store.List(ctx, "customers")
		require.NoError(t, err)
		assert.Equal(t, docs, again)
	})

	t.Run("CollectionsAreDisjoint", func(t *testing.T) {
		docs, err := store.List(ctx, "employees")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("UpdateMergesPatch", func(t *testing.T) {
		require.NoError(t, store.Update(ctx, "customers", first, map[string]any{"email": "s@example.com"}))

		doc, found, err := store.Get(ctx, "customers", first)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, map[string]any{"name": "Somchai", "email": "s@example.com"}, doc.Fields)
	})

	t.Run("ReturnedDocumentsAreCopies", func(t *testing.T) {
		docs, err := store.List(ctx, "customers")
		require.NoError(t, err)
		docs[0].Fields["name"] = "changed"

		doc, _, err := store.Get(ctx, "customers", first)
		require.NoError(t, err)
		assert.Equal(t, "Somchai", doc.Fields["name"])
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, _, err := store.Get(ctx, "customers", "")
		assert.ErrorIs(t, err, docstore.ErrMissingKey)
		assert.ErrorIs(t, store.Update(ctx, "customers", "", map[string]any{"a": 1}), docstore.ErrMissingKey)
		assert.ErrorIs(t, store.Delete(ctx, "customers", ""), docstore.ErrMissingKey)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, found, err := store.Get(ctx, "customers", "nope")
		require.NoError(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, store.Update(ctx, "customers", "nope", map[string]any{"a": 1}), docstore.ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, "customers", "nope"), docstore.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "customers", first))

		docs, err := store.List(ctx, "customers")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, second, docs[0].Key)
	})

	assert.NoError(t, store.Close())
}
