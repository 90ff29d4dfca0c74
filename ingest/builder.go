// Package ingest provides vector index build orchestration.
// It coordinates document loading, chunking, embedding, and persistence
// of the resulting index.
package ingest

import (
	"context"
	"fmt"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// DefaultBatchSize bounds the number of chunks sent per embedding request.
const DefaultBatchSize = 64

// Builder orchestrates building a vector index from a document file.
type Builder struct {
	Loader       carbon.DocumentLoader
	Embedder     carbon.Embedder
	Store        carbon.IndexStore
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
}

// Result holds the outcome of an index build.
type Result struct {
	Documents  int
	Chunks     int
	Dimensions int
}

// ProgressEvent reports progress during an index build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressLoaded ProgressType = iota
	ProgressChunked
	ProgressEmbedded
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build loads documents from docPath, splits them into chunks, embeds
// every chunk, and commits a fresh index. The previous index, if any,
// is replaced only after the new one is fully written. All chunks are
// embedded before any index state is created, so an embedding failure
// leaves the existing index untouched.
func (b *Builder) Build(ctx context.Context, docPath string, progress ProgressFunc) (*Result, error) {
	docs, err := b.Loader.Load(ctx, docPath)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		progress(ProgressEvent{Type: ProgressLoaded, Total: len(docs)})
	}

	chunkSize := b.ChunkSize
	if chunkSize <= 0 {
		chunkSize = carbon.DefaultChunkSize
	}
	chunkOverlap := b.ChunkOverlap
	if chunkOverlap < 0 {
		chunkOverlap = carbon.DefaultChunkOverlap
	}

	var chunks []*carbon.Chunk
	for _, doc := range docs {
		docChunks, err := carbon.SplitDocument(doc, chunkSize, chunkOverlap)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, docChunks...)
	}
	if len(chunks) == 0 {
		return nil, carbon.Errorf(carbon.EINVALID, "document file produced no chunks to index")
	}
	if progress != nil {
		progress(ProgressEvent{Type: ProgressChunked, Total: len(chunks)})
	}

	if err := b.embedChunks(ctx, chunks, progress); err != nil {
		return nil, err
	}

	dimensions := len(chunks[0].Embedding)
	idx, err := b.Store.Create(ctx, dimensions)
	if err != nil {
		return nil, err
	}

	if err := b.writeIndex(ctx, idx, chunks); err != nil {
		if abortErr := b.Store.Abort(); abortErr != nil {
			return nil, fmt.Errorf("failed to discard partial index after %w: %v", err, abortErr)
		}
		return nil, err
	}

	if err := b.Store.Commit(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(chunks), Total: len(chunks)})
	}

	return &Result{
		Documents:  len(docs),
		Chunks:     len(chunks),
		Dimensions: dimensions,
	}, nil
}

// embedChunks fills in chunk embeddings batch by batch.
func (b *Builder) embedChunks(ctx context.Context, chunks []*carbon.Chunk, progress ProgressFunc) error {
	batchSize := b.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	for start := 0; start < len(chunks); start += batchSize {
		end := min(start+batchSize, len(chunks))
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		vectors, err := b.Embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return err
		}
		if len(vectors) != len(batch) {
			return carbon.Errorf(carbon.EUNAVAILABLE,
				"embedder returned %d vectors for %d chunks", len(vectors), len(batch))
		}
		for i, chunk := range batch {
			chunk.Embedding = vectors[i]
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressEmbedded, Completed: end, Total: len(chunks)})
		}
	}

	return nil
}

func (b *Builder) writeIndex(ctx context.Context, idx carbon.ChunkIndex, chunks []*carbon.Chunk) error {
	if err := idx.AddChunks(ctx, chunks); err != nil {
		idx.Close()
		return err
	}
	return idx.Close()
}
