// Package events manages event records: admin-created, publicly listed.
//
// An event may carry a club_id naming the organizing club. The reference is
// kept as a loose string and never validated against the club collection.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	ClubID      *string   `json:"club_id"`
	CreatedBy   string    `json:"created_by"`
}

type Repository interface {
	Create(ctx context.Context, event Event) (*Event, error)
	List(ctx context.Context) ([]Event, error)
}

type CreateInput struct {
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	ClubID      *string   `json:"club_id"`
}

type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "events").Logger(),
		validator: validator.New(),
	}
}

// Create stores a new event stamped with the creating admin's email.
func (s *Service) Create(ctx context.Context, input CreateInput, createdBy string) (*Event, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, ValidationError{Err: err}
	}

	event, err := s.repo.Create(ctx, Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		ClubID:      input.ClubID,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info().Str("event_id", event.ID).Str("created_by", createdBy).Msg("event created")
	return event, nil
}

// List returns every event.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return list, nil
}

// ValidationError wraps a request-shape failure from struct validation.
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Err.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}
