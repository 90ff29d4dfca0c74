package mock

import (
	"context"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

var _ carbon.ChunkIndex = (*ChunkIndex)(nil)

// ChunkIndex is a mock implementation of carbon.ChunkIndex.
type ChunkIndex struct {
	AddChunksFn func(ctx context.Context, chunks []*carbon.Chunk) error
	SearchFn    func(ctx context.Context, embedding []float32, k int) ([]carbon.SearchResult, error)
	CountFn     func(ctx context.Context) (int, error)
	CloseFn     func() error
}

func (i *ChunkIndex) AddChunks(ctx context.Context, chunks []*carbon.Chunk) error {
	return i.AddChunksFn(ctx, chunks)
}

func (i *ChunkIndex) Search(ctx context.Context, embedding []float32, k int) ([]carbon.SearchResult, error) {
	return i.SearchFn(ctx, embedding, k)
}

func (i *ChunkIndex) Count(ctx context.Context) (int, error) {
	return i.CountFn(ctx)
}

func (i *ChunkIndex) Close() error {
	return i.CloseFn()
}

var _ carbon.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of carbon.IndexStore.
type IndexStore struct {
	CreateFn func(ctx context.Context, dimensions int) (carbon.ChunkIndex, error)
	CommitFn func() error
	AbortFn  func() error
	OpenFn   func(ctx context.Context) (carbon.ChunkIndex, error)
}

func (s *IndexStore) Create(ctx context.Context, dimensions int) (carbon.ChunkIndex, error) {
	return s.CreateFn(ctx, dimensions)
}

func (s *IndexStore) Commit() error {
	return s.CommitFn()
}

func (s *IndexStore) Abort() error {
	return s.AbortFn()
}

func (s *IndexStore) Open(ctx context.Context) (carbon.ChunkIndex, error) {
	return s.OpenFn(ctx)
}
