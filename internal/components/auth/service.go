package auth

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/brochuregen/backend/internal/shared/apperror"
	"github.com/brochuregen/backend/internal/shared/token"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations
const pgUniqueViolation = "23505"

const msgInvalidCredentials = "invalid email or password"

type (
	servicer interface {
		Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
		Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	}

	service struct {
		repo   repoer
		tokens *token.Service
	}
)

func NewService(repo repoer, tokens *token.Service) servicer {
	return &service{
		repo:   repo,
		tokens: tokens,
	}
}

// Signup registers a new user and issues a token for the email. The existence
// check and the insert are separate statements; a concurrent signup that slips
// between them is caught by the users.email unique constraint and reported as
// a conflict just like the fast path.
func (s *service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return nil, apperror.NewValidationError("firstName, lastName, email and password are required", nil)
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("email already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("hash password", err)
	}

	user := &User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("email already registered", err)
		}
		return nil, apperror.NewDatabaseError("create user", err)
	}

	return s.authResponse(created)
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password collapse into the same message so account existence is not leaked.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperror.NewValidationError("email and password are required", nil)
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
	}

	return s.authResponse(user)
}

func (s *service) authResponse(user *User) (*AuthResponse, error) {
	accessToken, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, apperror.NewInternalError("issue token", err)
	}

	return &AuthResponse{
		AccessToken: accessToken,
		UserID:      strconv.FormatInt(user.ID, 10),
		Name:        user.FirstName + " " + user.LastName,
		Email:       user.Email,
	}, nil
}
