// Package users implements account registration, credential login, and
// session-token authentication.
//
// Sessions are opaque random tokens stored on the user record itself; a token
// is valid exactly while it is present in some user's session list. There is
// no server-side expiry: logout is the only path that removes a token.
//
// The first account ever registered is promoted to admin automatically.
package users

import (
	"context"
	"fmt"

	"github.com/campusclubs/server/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Service struct {
	repo      Repository
	hasher    *auth.PasswordHasher
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, hasher *auth.PasswordHasher, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		logger:    logger.With().Str("component", "users").Logger(),
		validator: validator.New(),
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by both Register and Login.
type AuthResult struct {
	Token   string
	IsAdmin bool
	Name    string
	Email   string
}

// Register creates a new account and issues its first session token.
//
// The first account ever created gets IsAdmin=true. Both the duplicate-email
// check and the first-user count are separate reads before the insert; two
// concurrent registrations can race past them. That window is accepted.
//
// Possible errors: ValidationError (malformed input), ErrEmailTaken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, ValidationError{Err: err}
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	isFirstUser := count == 0

	user := User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: s.hasher.Hash(input.Password),
		IsAdmin:      isFirstUser,
		Sessions:     []string{},
	}
	userID, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Bool("is_admin", isFirstUser).
		Msg("user registered")

	return &AuthResult{Token: token, IsAdmin: isFirstUser, Name: user.Name, Email: user.Email}, nil
}

// Login verifies credentials and issues a fresh session token. Existing
// sessions are untouched; a user may hold several tokens at once.
//
// Possible errors: ValidationError, ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, ValidationError{Err: err}
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &AuthResult{Token: token, IsAdmin: user.IsAdmin, Name: user.Name, Email: user.Email}, nil
}

// Logout revokes the given token. It never fails from the caller's point of
// view: an unknown or empty token simply revokes nothing.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	user, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("lookup session: %w", err)
	}
	if user == nil {
		return nil
	}

	if err := s.repo.RemoveSession(ctx, user.ID, token); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("session revoked")
	return nil
}

func (s *Service) issueSession(ctx context.Context, userID string) (string, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.repo.AppendSession(ctx, userID, token); err != nil {
		return "", fmt.Errorf("append session: %w", err)
	}
	return token, nil
}
