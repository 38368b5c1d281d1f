package postgres

import (
	"context"
	"fmt"

	"github.com/campusclubs/server/internal/domain/clubs"
	"github.com/campusclubs/server/internal/storage"
)

// ClubsRepository maps club records onto the generic document gateway.
type ClubsRepository struct {
	docs *DocumentsRepository
}

func (r *ClubsRepository) Create(ctx context.Context, club clubs.Club) (*clubs.Club, error) {
	id, err := r.docs.Insert(ctx, storage.CollectionClubs, map[string]any{
		"name":        club.Name,
		"description": club.Description,
		"created_by":  club.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	club.ID = id
	return &club, nil
}

func (r *ClubsRepository) List(ctx context.Context) ([]clubs.Club, error) {
	docs, err := r.docs.FindAll(ctx, storage.CollectionClubs)
	if err != nil {
		return nil, err
	}

	list := make([]clubs.Club, 0, len(docs))
	for _, d := range docs {
		var club clubs.Club
		if err := decodeDoc(d.Doc, &club); err != nil {
			return nil, fmt.Errorf("decode club %s: %w", d.ID, err)
		}
		club.ID = d.ID
		list = append(list, club)
	}
	return list, nil
}
