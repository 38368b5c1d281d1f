package users

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password digest does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is empty or matches no
	// user's session list.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotAdmin is returned when an authenticated user lacks the admin flag.
	ErrNotAdmin = errors.New("admin only")
)

// ValidationError wraps a request-shape failure from struct validation so
// handlers can map it to an unprocessable-entity response.
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Err.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}
