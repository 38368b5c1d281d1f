package users

import (
	"context"
	"fmt"
)

// Authenticate resolves a session token to its owning user. An empty token or
// one outside every user's session list fails with ErrInvalidToken.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// RequireAdmin authenticates the token and additionally requires the admin
// flag. Handlers that create records call this inline per request; there is
// no shared auth middleware.
func (s *Service) RequireAdmin(ctx context.Context, token string) (*User, error) {
	user, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, ErrNotAdmin
	}
	return user, nil
}
