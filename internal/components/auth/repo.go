package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brochuregen/backend/internal/shared/apperror"
)

type (
	repoer interface {
		Create(ctx context.Context, user *User) (*User, error)
		FindByEmail(ctx context.Context, email string) (*User, error)
		ExistsByEmail(ctx context.Context, email string) (bool, error)
		FindByID(ctx context.Context, id int64) (*User, error)
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

// Create inserts the user and returns it with the store-assigned id and
// timestamp. A duplicate email surfaces the unique-violation error unmapped;
// the service translates it.
func (r *repo) Create(ctx context.Context, user *User) (*User, error) {
	stmt := `
	INSERT INTO users (
		first_name, last_name, email, password_hash
	)
	VALUES (
		$1, $2, $3, $4
	)
	RETURNING id, created_at`

	err := r.pool.QueryRow(
		ctx,
		stmt,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	stmt := `
	SELECT id, first_name, last_name, email, password_hash, created_at
	FROM users
	WHERE email = $1`

	var user User
	err := r.pool.QueryRow(ctx, stmt, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("find user by email", err)
	}

	return &user, nil
}

func (r *repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	stmt := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, stmt, email).Scan(&exists); err != nil {
		return false, apperror.NewDatabaseError("check email exists", err)
	}
	return exists, nil
}

func (r *repo) FindByID(ctx context.Context, id int64) (*User, error) {
	stmt := `
	SELECT id, first_name, last_name, email, password_hash, created_at
	FROM users
	WHERE id = $1`

	var user User
	err := r.pool.QueryRow(ctx, stmt, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("find user by id", err)
	}

	return &user, nil
}
