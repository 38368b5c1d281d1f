package postgres

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/campusclubs/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

// DocumentsRepository is the generic persistence gateway: schema-flexible
// JSONB documents in named collections. It performs no shape validation.
type DocumentsRepository struct {
	pool *pgxpool.Pool
}

func (r *DocumentsRepository) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	id, err := newDocumentID()
	if err != nil {
		return "", err
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO documents (id, collection, doc)
VALUES ($1, $2, $3)
`, id, collection, doc)
	if err != nil {
		return "", fmt.Errorf("insert document into %s: %w", collection, err)
	}
	return id, nil
}

func (r *DocumentsRepository) FindAll(ctx context.Context, collection string) ([]storage.Document, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, doc
  FROM documents
 WHERE collection = $1
 ORDER BY created_at, id
`, collection)
	if err != nil {
		return nil, fmt.Errorf("find documents in %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []storage.Document
	for rows.Next() {
		var d storage.Document
		if err := rows.Scan(&d.ID, &d.Doc); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents in %s: %w", collection, err)
	}
	return docs, nil
}

func (r *DocumentsRepository) Collections(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return names, nil
}

func newDocumentID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", fmt.Errorf("mint document id: %w", err)
	}
	return id.String(), nil
}
