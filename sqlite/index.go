package sqlite

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Compile-time interface verification.
var _ carbon.ChunkIndex = (*Index)(nil)

// Index implements carbon.ChunkIndex on a SQLite database with a vec0
// virtual table for KNN search. Chunk rows and embedding rows share a
// rowid; the chunks table is the source of truth for text and metadata.
type Index struct {
	db         *DB
	dimensions int
}

// createSchema creates the index tables for the given embedding
// dimensionality, which is fixed for the life of the index.
func createSchema(ctx context.Context, db *DB, dimensions int) error {
	if dimensions <= 0 {
		return carbon.Errorf(carbon.EINVALID, "embedding dimensions must be positive, got %d", dimensions)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS chunks (
			id TEXT NOT NULL UNIQUE,
			url TEXT NOT NULL,
			title TEXT NOT NULL,
			source TEXT NOT NULL,
			start_index INTEGER NOT NULL,
			content TEXT NOT NULL
		);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	vec := fmt.Sprintf(
		`CREATE VIRTUAL TABLE IF NOT EXISTS chunk_embeddings USING vec0(embedding float[%d] distance_metric=cosine)`,
		dimensions,
	)
	if _, err := db.ExecContext(ctx, vec); err != nil {
		return fmt.Errorf("failed to create vec0 table: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('dimensions', ?)`,
		fmt.Sprintf("%d", dimensions),
	); err != nil {
		return fmt.Errorf("failed to record dimensions: %w", err)
	}

	return nil
}

// readDimensions loads the recorded dimensionality of an existing index.
func readDimensions(ctx context.Context, db *DB) (int, error) {
	var dimensions int
	err := db.QueryRowContext(ctx,
		`SELECT value FROM meta WHERE key = 'dimensions'`,
	).Scan(&dimensions)
	if err != nil {
		return 0, fmt.Errorf("failed to read index dimensions: %w", err)
	}
	return dimensions, nil
}

// AddChunks stores chunks along with their embeddings in one transaction.
func (idx *Index) AddChunks(ctx context.Context, chunks []*carbon.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	for _, chunk := range chunks {
		if len(chunk.Embedding) != idx.dimensions {
			return carbon.Errorf(carbon.EINVALID,
				"chunk embedding has %d dimensions, index expects %d", len(chunk.Embedding), idx.dimensions)
		}
	}

	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, chunk := range chunks {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (id, url, title, source, start_index, content)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), chunk.Metadata.URL, chunk.Metadata.Title,
			chunk.Metadata.Source, chunk.Metadata.StartIndex, chunk.Text)
		if err != nil {
			return fmt.Errorf("failed to insert chunk: %w", err)
		}

		rowID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get chunk rowid: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chunk_embeddings (rowid, embedding) VALUES (?, ?)`,
			rowID, serializeFloat32(chunk.Embedding),
		); err != nil {
			return fmt.Errorf("failed to insert embedding: %w", err)
		}
	}

	return tx.Commit()
}

// Search returns up to k chunks ordered by descending cosine similarity.
// vec0 KNN results are ordered by ascending distance with ties resolved
// by rowid, which is insertion order.
func (idx *Index) Search(ctx context.Context, embedding []float32, k int) ([]carbon.SearchResult, error) {
	if k < 1 {
		return nil, carbon.Errorf(carbon.EINVALID, "k must be at least 1, got %d", k)
	}
	if len(embedding) != idx.dimensions {
		return nil, carbon.Errorf(carbon.EINVALID,
			"query embedding has %d dimensions, index expects %d", len(embedding), idx.dimensions)
	}

	rows, err := idx.db.QueryContext(ctx, `
		SELECT c.url, c.title, c.source, c.start_index, c.content, e.distance
		FROM chunk_embeddings e
		INNER JOIN chunks c ON c.rowid = e.rowid
		WHERE e.embedding MATCH ? AND e.k = ?
		ORDER BY e.distance
	`, serializeFloat32(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer rows.Close()

	results := []carbon.SearchResult{}
	for rows.Next() {
		var chunk carbon.Chunk
		var distance float64
		if err := rows.Scan(&chunk.Metadata.URL, &chunk.Metadata.Title, &chunk.Metadata.Source,
			&chunk.Metadata.StartIndex, &chunk.Text, &distance); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		// Cosine distance is 1 - cosine similarity.
		results = append(results, carbon.SearchResult{
			Chunk: &chunk,
			Score: float32(1.0 - distance),
		})
	}

	return results, rows.Err()
}

// Count returns the number of indexed chunks.
func (idx *Index) Count(ctx context.Context) (int, error) {
	var count int
	err := idx.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks`).Scan(&count)
	return count, err
}

// Close closes the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// serializeFloat32 converts a vector to the little-endian BLOB format
// sqlite-vec expects.
func serializeFloat32(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
