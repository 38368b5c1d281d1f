package postgres

import (
	"fmt"

	"github.com/campusclubs/server/internal/domain/clubs"
	"github.com/campusclubs/server/internal/domain/events"
	"github.com/campusclubs/server/internal/domain/users"
	"github.com/campusclubs/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Documents() storage.DocumentStore {
	return &DocumentsRepository{pool: r.pool}
}

func (r *Repository) Users() users.Repository {
	return &UsersRepository{pool: r.pool}
}

func (r *Repository) Clubs() clubs.Repository {
	return &ClubsRepository{docs: &DocumentsRepository{pool: r.pool}}
}

func (r *Repository) Events() events.Repository {
	return &EventsRepository{docs: &DocumentsRepository{pool: r.pool}}
}
