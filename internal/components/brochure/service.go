package brochure

import (
	"context"

	"github.com/brochuregen/backend/internal/shared/apperror"
)

// DefaultLimit is applied at the boundary when the client does not ask for a
// specific number of records.
const DefaultLimit = 10

type (
	servicer interface {
		ResolveUserID(ctx context.Context, email string) (int64, error)
		Create(ctx context.Context, userID int64, req SaveBrochureIn) (*BrochureRecord, error)
		Recent(ctx context.Context, userID int64, limit int) ([]BrochureRecord, error)
	}

	service struct {
		repo repoer
	}
)

func NewService(repo repoer) servicer {
	return &service{repo: repo}
}

// ResolveUserID maps an authenticated principal's email to the owning user id
func (s *service) ResolveUserID(ctx context.Context, email string) (int64, error) {
	return s.repo.UserIDByEmail(ctx, email)
}

// Create persists a new brochure record for userID. The creation timestamp is
// always assigned by the store at insert time; callers cannot supply one.
func (s *service) Create(ctx context.Context, userID int64, req SaveBrochureIn) (*BrochureRecord, error) {
	if req.HotelName == "" || req.Location == "" || req.FilePath == "" {
		return nil, apperror.NewValidationError("hotelName, location and filePath are required", nil)
	}

	record := &BrochureRecord{
		UserID:          userID,
		HotelName:       req.HotelName,
		Location:        req.Location,
		FilePath:        req.FilePath,
		ExteriorImage:   req.ExteriorImage,
		RoomImage:       req.RoomImage,
		RestaurantImage: req.RestaurantImage,
		Prompt:          req.Prompt,
	}

	return s.repo.Create(ctx, record)
}

// Recent returns up to limit records for userID, newest first. limit must be
// positive; there is no silent coercion.
func (s *service) Recent(ctx context.Context, userID int64, limit int) ([]BrochureRecord, error) {
	if limit <= 0 {
		return nil, apperror.NewValidationError("limit must be a positive integer", nil)
	}
	return s.repo.ListRecent(ctx, userID, limit)
}
