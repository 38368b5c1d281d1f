package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusclubs/server/internal/domain/users"
	"github.com/campusclubs/server/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsersRepository stores user records as documents in the "user" collection.
// Session lookups use JSONB containment on the sessions array; there is no
// token index and no unique constraint on email (uniqueness is the service's
// check-then-insert, by contract).
type UsersRepository struct {
	pool *pgxpool.Pool
}

type userDoc struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password_hash"`
	IsAdmin      bool     `json:"is_admin"`
	Sessions     []string `json:"sessions"`
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, doc
  FROM documents
 WHERE collection = $1
   AND doc->>'email' = $2
 LIMIT 1
`, storage.CollectionUsers, email)
	return scanUser(row)
}

func (r *UsersRepository) GetByToken(ctx context.Context, token string) (*users.User, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, doc
  FROM documents
 WHERE collection = $1
   AND doc->'sessions' @> to_jsonb($2::text)
 LIMIT 1
`, storage.CollectionUsers, token)
	return scanUser(row)
}

func (r *UsersRepository) Create(ctx context.Context, user users.User) (string, error) {
	docs := &DocumentsRepository{pool: r.pool}
	sessions := user.Sessions
	if sessions == nil {
		sessions = []string{}
	}
	id, err := docs.Insert(ctx, storage.CollectionUsers, map[string]any{
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"is_admin":      user.IsAdmin,
		"sessions":      sessions,
	})
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (r *UsersRepository) AppendSession(ctx context.Context, userID, token string) error {
	_, err := r.pool.Exec(ctx, `
UPDATE documents
   SET doc = jsonb_set(doc, '{sessions}',
         coalesce(doc->'sessions', '[]'::jsonb) || to_jsonb($3::text))
 WHERE collection = $1
   AND id = $2
`, storage.CollectionUsers, userID, token)
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

func (r *UsersRepository) RemoveSession(ctx context.Context, userID, token string) error {
	_, err := r.pool.Exec(ctx, `
UPDATE documents
   SET doc = jsonb_set(doc, '{sessions}',
         coalesce(
           (SELECT jsonb_agg(value)
              FROM jsonb_array_elements_text(doc->'sessions')
             WHERE value <> $3),
           '[]'::jsonb))
 WHERE collection = $1
   AND id = $2
`, storage.CollectionUsers, userID, token)
	if err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (r *UsersRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
SELECT count(*) FROM documents WHERE collection = $1
`, storage.CollectionUsers).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func scanUser(row pgx.Row) (*users.User, error) {
	var (
		id  string
		doc userDoc
	)
	if err := row.Scan(&id, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &users.User{
		ID:           id,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		IsAdmin:      doc.IsAdmin,
		Sessions:     doc.Sessions,
	}, nil
}
