package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/sqlite"
)

func TestIndexStore(t *testing.T) {
	t.Parallel()

	t.Run("committed index survives reopening", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vector_db")
		store := sqlite.NewIndexStore(dir)
		ctx := context.Background()

		idx, err := store.Create(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, idx.AddChunks(ctx, []*carbon.Chunk{
			testChunk("persisted", "https://example.com/a", []float32{1, 0, 0}),
		}))
		require.NoError(t, idx.Close())
		require.NoError(t, store.Commit())

		reopened, err := store.Open(ctx)
		require.NoError(t, err)
		defer reopened.Close()

		count, err := reopened.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		results, err := reopened.Search(ctx, []float32{1, 0, 0}, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "persisted", results[0].Chunk.Text)
	})

	t.Run("open returns ENOTFOUND when no index exists", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewIndexStore(filepath.Join(t.TempDir(), "vector_db"))

		_, err := store.Open(context.Background())
		require.Error(t, err)
		assert.Equal(t, carbon.ENOTFOUND, carbon.ErrorCode(err))
	})

	t.Run("opened index rejects writes", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vector_db")
		store := sqlite.NewIndexStore(dir)
		ctx := context.Background()

		idx, err := store.Create(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, idx.AddChunks(ctx, []*carbon.Chunk{
			testChunk("persisted", "https://example.com/a", []float32{1, 0, 0}),
		}))
		require.NoError(t, idx.Close())
		require.NoError(t, store.Commit())

		reopened, err := store.Open(ctx)
		require.NoError(t, err)
		defer reopened.Close()

		err = reopened.AddChunks(ctx, []*carbon.Chunk{
			testChunk("late write", "https://example.com/b", []float32{0, 1, 0}),
		})
		assert.Error(t, err)

		count, err := reopened.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("abort leaves previous index intact", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vector_db")
		store := sqlite.NewIndexStore(dir)
		ctx := context.Background()

		idx, err := store.Create(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, idx.AddChunks(ctx, []*carbon.Chunk{
			testChunk("original", "https://example.com/a", []float32{1, 0, 0}),
		}))
		require.NoError(t, idx.Close())
		require.NoError(t, store.Commit())

		// A second build that fails partway through is discarded.
		staged, err := store.Create(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, staged.Close())
		require.NoError(t, store.Abort())

		reopened, err := store.Open(ctx)
		require.NoError(t, err)
		defer reopened.Close()

		count, err := reopened.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("commit replaces previous index", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vector_db")
		store := sqlite.NewIndexStore(dir)
		ctx := context.Background()

		first, err := store.Create(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, first.AddChunks(ctx, []*carbon.Chunk{
			testChunk("old", "https://example.com/a", []float32{1, 0, 0}),
			testChunk("older", "https://example.com/b", []float32{0, 1, 0}),
		}))
		require.NoError(t, first.Close())
		require.NoError(t, store.Commit())

		second, err := store.Create(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, second.AddChunks(ctx, []*carbon.Chunk{
			testChunk("new", "https://example.com/c", []float32{0, 0, 1}),
		}))
		require.NoError(t, second.Close())
		require.NoError(t, store.Commit())

		reopened, err := store.Open(ctx)
		require.NoError(t, err)
		defer reopened.Close()

		count, err := reopened.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("commit removes the staging directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vector_db")
		store := sqlite.NewIndexStore(dir)
		ctx := context.Background()

		idx, err := store.Create(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, idx.Close())
		require.NoError(t, store.Commit())

		_, err = os.Stat(dir + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("create rejects non-positive dimensions", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewIndexStore(filepath.Join(t.TempDir(), "vector_db"))

		_, err := store.Create(context.Background(), 0)
		require.Error(t, err)
		assert.Equal(t, carbon.EINVALID, carbon.ErrorCode(err))
	})
}
