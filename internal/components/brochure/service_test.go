package brochure

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brochuregen/backend/internal/shared/apperror"
)

type fakeRepo struct {
	records []BrochureRecord
	userIDs map[string]int64
	now     time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		userIDs: map[string]int64{},
		now:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) Create(_ context.Context, record *BrochureRecord) (*BrochureRecord, error) {
	record.ID = uuid.New()
	record.CreatedAt = f.now
	f.now = f.now.Add(time.Second) // monotonic per insert
	f.records = append(f.records, *record)
	return record, nil
}

func (f *fakeRepo) ListRecent(_ context.Context, userID int64, limit int) ([]BrochureRecord, error) {
	matched := make([]BrochureRecord, 0, limit)
	for _, record := range f.records {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeRepo) UserIDByEmail(_ context.Context, email string) (int64, error) {
	id, ok := f.userIDs[email]
	if !ok {
		return 0, apperror.NewNotFoundError("user not found", nil)
	}
	return id, nil
}

func strptr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	record, err := svc.Create(context.Background(), 1, SaveBrochureIn{
		HotelName:     "Grand Hotel",
		Location:      "Lisbon",
		FilePath:      "brochures/grand-hotel.pdf",
		ExteriorImage: strptr("img/ext.png"),
		Prompt:        strptr("sunny seaside hotel"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, int64(1), record.UserID)
	assert.Equal(t, "Grand Hotel", record.HotelName)
	assert.Equal(t, "img/ext.png", *record.ExteriorImage)
	assert.Nil(t, record.RoomImage)
}

func TestCreateMissingRequiredFields(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), 1, SaveBrochureIn{HotelName: "Grand Hotel"})
	assert.True(t, apperror.IsValidation(err))
}

func TestRecentNewestFirst(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := svc.Create(context.Background(), 1, SaveBrochureIn{
			HotelName: name, Location: "Lisbon", FilePath: "f.pdf",
		})
		require.NoError(t, err)
	}

	records, err := svc.Recent(context.Background(), 1, 2)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Third", records[0].HotelName)
	assert.Equal(t, "Second", records[1].HotelName)
}

func TestRecentScopedToUser(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 1, SaveBrochureIn{HotelName: "Mine", Location: "L", FilePath: "f"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, SaveBrochureIn{HotelName: "Theirs", Location: "L", FilePath: "f"})
	require.NoError(t, err)

	records, err := svc.Recent(context.Background(), 1, 10)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Mine", records[0].HotelName)
}

func TestRecentEmpty(t *testing.T) {
	svc := NewService(newFakeRepo())

	records, err := svc.Recent(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRecentRejectsNonPositiveLimit(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Recent(context.Background(), 1, 0)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Recent(context.Background(), 1, -5)
	assert.True(t, apperror.IsValidation(err))
}

func TestResolveUserID(t *testing.T) {
	repo := newFakeRepo()
	repo.userIDs["alice@x.com"] = 42
	svc := NewService(repo)

	id, err := svc.ResolveUserID(context.Background(), "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = svc.ResolveUserID(context.Background(), "nobody@x.com")
	assert.True(t, apperror.IsNotFound(err))
}
