// Package storage persists passage chunks and their embeddings in Postgres
// with the pgvector extension and serves similarity search over them.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/Divas-Gupta30/doc-qa-agent/internal/retrieval"
)

// PassageStore is the pgvector-backed passage index. It is safe for
// concurrent use; all methods go through the shared pool.
type PassageStore struct {
	pool *pgxpool.Pool
}

func NewPassageStore(pool *pgxpool.Pool) *PassageStore {
	return &PassageStore{pool: pool}
}

// EnsureSchema creates the passages table and vector extension if missing.
func (s *PassageStore) EnsureSchema(ctx context.Context, dimension int) error {
	if _, err := s.pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("creating vector extension: %w", err)
	}
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS passages (
		id SERIAL PRIMARY KEY,
		source TEXT NOT NULL,
		page TEXT NOT NULL DEFAULT 'unknown',
		content TEXT NOT NULL,
		embedding vector(%d)
	)`, dimension)
	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("creating passages table: %w", err)
	}
	return nil
}

// InsertPassage stores one chunk with its embedding.
func (s *PassageStore) InsertPassage(ctx context.Context, source, page, content string, embedding []float32) error {
	if page == "" {
		page = retrieval.PageUnknown
	}
	_, err := s.pool.Exec(ctx,
		"INSERT INTO passages (source, page, content, embedding) VALUES ($1, $2, $3, $4)",
		source, page, content, pgvector.NewVector(embedding))
	if err != nil {
		return fmt.Errorf("inserting passage: %w", err)
	}
	return nil
}

// SearchSimilar returns the k passages nearest to the query embedding,
// best-first. The row order is the retrieval rank downstream citation IDs
// are assigned from.
func (s *PassageStore) SearchSimilar(ctx context.Context, embedding []float32, k int) ([]retrieval.Passage, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT content, source, page FROM passages ORDER BY embedding <-> $1 LIMIT $2",
		pgvector.NewVector(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}
	defer rows.Close()

	var results []retrieval.Passage
	for rows.Next() {
		var p retrieval.Passage
		if err := rows.Scan(&p.Text, &p.Source, &p.Page); err != nil {
			return nil, fmt.Errorf("scanning passage: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Clear removes all indexed passages.
func (s *PassageStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "TRUNCATE passages")
	return err
}
