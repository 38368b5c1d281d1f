package postgres

import (
	"context"
	"fmt"

	"github.com/campusclubs/server/internal/domain/events"
	"github.com/campusclubs/server/internal/storage"
)

// EventsRepository maps event records onto the generic document gateway.
// The club_id reference is stored as given; it is never checked against the
// club collection.
type EventsRepository struct {
	docs *DocumentsRepository
}

func (r *EventsRepository) Create(ctx context.Context, event events.Event) (*events.Event, error) {
	id, err := r.docs.Insert(ctx, storage.CollectionEvents, map[string]any{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"club_id":     event.ClubID,
		"created_by":  event.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	event.ID = id
	return &event, nil
}

func (r *EventsRepository) List(ctx context.Context) ([]events.Event, error) {
	docs, err := r.docs.FindAll(ctx, storage.CollectionEvents)
	if err != nil {
		return nil, err
	}

	list := make([]events.Event, 0, len(docs))
	for _, d := range docs {
		var event events.Event
		if err := decodeDoc(d.Doc, &event); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", d.ID, err)
		}
		event.ID = d.ID
		list = append(list, event)
	}
	return list, nil
}
