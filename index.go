package carbon

import "context"

// ChunkIndex is a persisted collection of embedded chunks supporting
// nearest-neighbor similarity search. Entries are owned exclusively by
// the index and keyed by an opaque internal id.
type ChunkIndex interface {
	// AddChunks stores chunks along with their embeddings.
	// Every chunk must carry an embedding of the index's dimensionality.
	AddChunks(ctx context.Context, chunks []*Chunk) error

	// Search returns up to k chunks ordered by descending similarity,
	// ties broken by insertion order. An empty index yields an empty
	// result, not an error.
	Search(ctx context.Context, embedding []float32, k int) ([]SearchResult, error)

	// Count returns the number of indexed chunks.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying storage.
	Close() error
}

// IndexStore manages a chunk index at a persisted location. Create
// stages a fresh index; Commit atomically replaces any prior index at
// the location; Abort discards the staged build. A build is only
// durable after Commit returns, so a failed build never leaves a
// partial index behind.
type IndexStore interface {
	Create(ctx context.Context, dimensions int) (ChunkIndex, error)
	Commit() error
	Abort() error

	// Open opens the existing index read-only.
	// Returns ENOTFOUND if no index has been built at the location.
	Open(ctx context.Context) (ChunkIndex, error)
}
