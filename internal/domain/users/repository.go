package users

import "context"

// User is the stored account record. Sessions holds every active opaque
// session token for the user, in issue order.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	Sessions     []string
}

// Repository is the persistence contract for user records.
//
// Email uniqueness is NOT enforced at this layer: GetByEmail followed by
// Create is the only duplicate check, so two concurrent registrations with
// the same email can both land. That check-then-insert gap is accepted
// behavior, not something the repository is expected to close.
type Repository interface {
	// GetByEmail returns the user with the given email, or nil when absent.
	// Matching is exact and case-sensitive.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByToken returns the user whose session list contains token, or nil.
	GetByToken(ctx context.Context, token string) (*User, error)

	// Create stores a new user and returns its generated id.
	Create(ctx context.Context, user User) (string, error)

	// AppendSession adds token to the user's session list.
	AppendSession(ctx context.Context, userID, token string) error

	// RemoveSession removes exactly token from the user's session list.
	// Removing a token that is not present is a no-op, not an error.
	RemoveSession(ctx context.Context, userID, token string) error

	// Count returns the total number of user records.
	Count(ctx context.Context) (int64, error)
}
