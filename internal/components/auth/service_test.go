package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/brochuregen/backend/internal/shared/apperror"
	"github.com/brochuregen/backend/internal/shared/config"
	"github.com/brochuregen/backend/internal/shared/token"
)

type fakeRepo struct {
	users     map[string]*User
	nextID    int64
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*User{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, user *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	return user, nil
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperror.NewNotFoundError("user not found", nil)
}

func newTestTokens() *token.Service {
	return token.NewService(&config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour})
}

func TestSignup(t *testing.T) {
	repo := newFakeRepo()
	tokens := newTestTokens()
	svc := NewService(repo, tokens)

	resp, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@x.com",
		Password:  "pw123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", resp.Name)
	assert.Equal(t, "alice@x.com", resp.Email)
	assert.Equal(t, "1", resp.UserID)
	require.NotEmpty(t, resp.AccessToken)

	// Issued token binds to the signup email
	email, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)

	// Stored hash verifies against the original password
	stored := repo.users["alice@x.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newTestTokens())

	req := SignupRequest{FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", Password: "pw123"}

	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req)
	assert.True(t, apperror.IsConflict(err))
}

func TestSignupConcurrentDuplicateMapsToConflict(t *testing.T) {
	// The existence check passed but the insert hit the unique constraint,
	// as happens when two signups race.
	repo := newFakeRepo()
	repo.createErr = &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}
	svc := NewService(repo, newTestTokens())

	_, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", Password: "pw123",
	})
	assert.True(t, apperror.IsConflict(err))
}

func TestSignupMissingFields(t *testing.T) {
	svc := NewService(newFakeRepo(), newTestTokens())

	_, err := svc.Signup(context.Background(), SignupRequest{FirstName: "Alice", Email: "alice@x.com"})
	assert.True(t, apperror.IsValidation(err))
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	tokens := newTestTokens()
	svc := NewService(repo, tokens)

	_, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "alice@x.com", Password: "pw123"})
	require.NoError(t, err)

	assert.Equal(t, "alice@x.com", resp.Email)
	assert.Equal(t, "Alice Smith", resp.Name)

	email, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newTestTokens())

	_, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", Password: "pw123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "alice@x.com", Password: "wrong"})
	assert.True(t, apperror.IsAuth(err))
	assert.EqualError(t, err, msgInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc := NewService(newFakeRepo(), newTestTokens())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@x.com", Password: "pw123"})
	assert.True(t, apperror.IsAuth(err))
	// Same message as a wrong password so account existence is not leaked
	assert.EqualError(t, err, msgInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewService(newFakeRepo(), newTestTokens())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "alice@x.com"})
	assert.True(t, apperror.IsValidation(err))
}
