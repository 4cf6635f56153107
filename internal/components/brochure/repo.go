package brochure

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brochuregen/backend/internal/shared/apperror"
)

type (
	repoer interface {
		Create(ctx context.Context, record *BrochureRecord) (*BrochureRecord, error)
		ListRecent(ctx context.Context, userID int64, limit int) ([]BrochureRecord, error)
		UserIDByEmail(ctx context.Context, email string) (int64, error)
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

// Create inserts the record; id and created_at are assigned by the store
func (r *repo) Create(ctx context.Context, record *BrochureRecord) (*BrochureRecord, error) {
	stmt := `
	INSERT INTO brochure_history (
		user_id, hotel_name, location, file_path,
		exterior_image, room_image, restaurant_image, prompt
	)
	VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8
	)
	RETURNING id, created_at`

	err := r.pool.QueryRow(
		ctx,
		stmt,
		record.UserID,
		record.HotelName,
		record.Location,
		record.FilePath,
		record.ExteriorImage,
		record.RoomImage,
		record.RestaurantImage,
		record.Prompt,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("create brochure record", err)
	}
	return record, nil
}

// ListRecent returns up to limit records owned by userID, newest first
func (r *repo) ListRecent(ctx context.Context, userID int64, limit int) ([]BrochureRecord, error) {
	stmt := `
	SELECT id, user_id, hotel_name, location, file_path,
	       exterior_image, room_image, restaurant_image, prompt, created_at
	FROM brochure_history
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, stmt, userID, limit)
	if err != nil {
		return nil, apperror.NewDatabaseError("list recent brochures", err)
	}
	defer rows.Close()

	records := make([]BrochureRecord, 0, limit)
	for rows.Next() {
		var record BrochureRecord
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.HotelName,
			&record.Location,
			&record.FilePath,
			&record.ExteriorImage,
			&record.RoomImage,
			&record.RestaurantImage,
			&record.Prompt,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewDatabaseError("scan brochure record", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("list recent brochures", err)
	}

	return records, nil
}

// UserIDByEmail resolves the owning user id for an authenticated principal
func (r *repo) UserIDByEmail(ctx context.Context, email string) (int64, error) {
	stmt := `SELECT id FROM users WHERE email = $1`

	var id int64
	if err := r.pool.QueryRow(ctx, stmt, email).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewNotFoundError("user not found", nil)
		}
		return 0, apperror.NewDatabaseError("resolve user id", err)
	}
	return id, nil
}
