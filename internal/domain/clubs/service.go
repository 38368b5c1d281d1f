// Package clubs manages club records: admin-created, publicly listed, never
// updated or deleted.
package clubs

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Club is a stored club record. Description may be absent.
type Club struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedBy   string  `json:"created_by"`
}

type Repository interface {
	// Create stores a club and returns it with its generated id.
	Create(ctx context.Context, club Club) (*Club, error)

	// List returns all clubs in insertion order.
	List(ctx context.Context) ([]Club, error)
}

type CreateInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "clubs").Logger(),
		validator: validator.New(),
	}
}

// Create stores a new club stamped with the creating admin's email.
func (s *Service) Create(ctx context.Context, input CreateInput, createdBy string) (*Club, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, ValidationError{Err: err}
	}

	club, err := s.repo.Create(ctx, Club{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}

	s.logger.Info().Str("club_id", club.ID).Str("created_by", createdBy).Msg("club created")
	return club, nil
}

// List returns every club.
func (s *Service) List(ctx context.Context) ([]Club, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
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
