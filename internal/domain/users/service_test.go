package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/campusclubs/server/internal/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records []*User
	nextID  int

	failGetByEmail error
	failCreate     error
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	if f.failGetByEmail != nil {
		return nil, f.failGetByEmail
	}
	for _, u := range f.records {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetByToken(_ context.Context, token string) (*User, error) {
	for _, u := range f.records {
		for _, s := range u.Sessions {
			if s == token {
				return u, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(_ context.Context, user User) (string, error) {
	if f.failCreate != nil {
		return "", f.failCreate
	}
	f.nextID++
	id := fmt.Sprintf("user-%d", f.nextID)
	stored := user
	stored.ID = id
	f.records = append(f.records, &stored)
	return id, nil
}

func (f *fakeRepo) AppendSession(_ context.Context, userID, token string) error {
	for _, u := range f.records {
		if u.ID == userID {
			u.Sessions = append(u.Sessions, token)
			return nil
		}
	}
	return fmt.Errorf("no such user %s", userID)
}

func (f *fakeRepo) RemoveSession(_ context.Context, userID, token string) error {
	for _, u := range f.records {
		if u.ID != userID {
			continue
		}
		kept := u.Sessions[:0]
		for _, s := range u.Sessions {
			if s != token {
				kept = append(kept, s)
			}
		}
		u.Sessions = kept
		return nil
	}
	return nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, auth.NewPasswordHasher("static_salt"), zerolog.Nop())
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	first, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)
	require.True(t, first.IsAdmin)
	require.NotEmpty(t, first.Token)

	second, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ben", Email: "ben@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)
	require.False(t, second.IsAdmin)
}

func TestRegisterAppendsFirstSession(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	result, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)

	user, err := repo.GetByEmail(context.Background(), "ada@campus.edu")
	require.NoError(t, err)
	require.Equal(t, []string{result.Token}, user.Sessions)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	first, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{
		Name: "Imposter", Email: "ada@campus.edu", Password: "other",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	// The existing user's sessions are untouched by the failed attempt.
	user, err := repo.GetByEmail(context.Background(), "ada@campus.edu")
	require.NoError(t, err)
	require.Equal(t, []string{first.Token}, user.Sessions)
	require.Len(t, repo.records, 1)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	cases := []RegisterInput{
		{Name: "", Email: "ada@campus.edu", Password: "hunter2"},
		{Name: "Ada", Email: "not-an-email", Password: "hunter2"},
		{Name: "Ada", Email: "ada@campus.edu", Password: ""},
	}
	for _, input := range cases {
		_, err := svc.Register(context.Background(), input)
		var invalid ValidationError
		require.ErrorAs(t, err, &invalid, "input %+v", input)
	}
}

func TestLoginIssuesFreshToken(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)

	loggedIn, err := svc.Login(context.Background(), LoginInput{
		Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)
	require.NotEqual(t, registered.Token, loggedIn.Token)
	require.Equal(t, "Ada", loggedIn.Name)

	user, err := repo.GetByEmail(context.Background(), "ada@campus.edu")
	require.NoError(t, err)
	require.Equal(t, []string{registered.Token, loggedIn.Token}, user.Sessions)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{
		Email: "ada@campus.edu", Password: "wrong",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := repo.GetByEmail(context.Background(), "ada@campus.edu")
	require.NoError(t, err)
	require.Equal(t, []string{registered.Token}, user.Sessions)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.Login(context.Background(), LoginInput{
		Email: "nobody@campus.edu", Password: "hunter2",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRemovesExactlyOneToken(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)
	loggedIn, err := svc.Login(context.Background(), LoginInput{
		Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), registered.Token))

	user, err := repo.GetByEmail(context.Background(), "ada@campus.edu")
	require.NoError(t, err)
	require.Equal(t, []string{loggedIn.Token}, user.Sessions)
}

func TestLogoutUnknownTokenIsNoOp(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	require.NoError(t, svc.Logout(context.Background(), "no-such-token"))
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthenticate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), registered.Token)
	require.NoError(t, err)
	require.Equal(t, "ada@campus.edu", user.Email)

	_, err = svc.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Authenticate(context.Background(), "bogus")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireAdmin(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	admin, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)
	member, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ben", Email: "ben@campus.edu", Password: "hunter2",
	})
	require.NoError(t, err)

	user, err := svc.RequireAdmin(context.Background(), admin.Token)
	require.NoError(t, err)
	require.True(t, user.IsAdmin)

	_, err = svc.RequireAdmin(context.Background(), member.Token)
	require.ErrorIs(t, err, ErrNotAdmin)

	_, err = svc.RequireAdmin(context.Background(), "bogus")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterRepositoryFailure(t *testing.T) {
	repo := &fakeRepo{failGetByEmail: errors.New("connection refused")}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@campus.edu", Password: "hunter2",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}
