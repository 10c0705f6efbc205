package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.json")
	return New(path, nil), path
}

func sampleBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		RestaurantID: "rest_001",
		UserID:       "user_001",
		Date:         "2026-09-15",
		TimeSlot:     domain.Slot7PM,
		Seats:        4,
		Status:       domain.StatusPending,
		ContactName:  "Анна",
		ContactPhone: "+7 900 000-00-01",
		CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestMissingFileIsEmptyState(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	bookings, err := store.Bookings(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)

	_, err = store.BookingByID(ctx, "book_001")
	assert.ErrorIs(t, err, overlay.ErrNotFound)

	deleted, err := store.DeletedReviewIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

func TestSaveBooking_RoundTrip(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	original := sampleBooking("book_001")
	require.NoError(t, store.SaveBooking(ctx, original))

	// Новый экземпляр поверх того же файла читает сохраненное состояние
	reopened := New(path, nil)
	loaded, err := reopened.BookingByID(ctx, "book_001")
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveBooking_ReplacesByID(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveBooking(ctx, sampleBooking("book_001")))

	updated := sampleBooking("book_001")
	updated.Status = domain.StatusConfirmed
	require.NoError(t, store.SaveBooking(ctx, updated))

	bookings, err := store.Bookings(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
}

func TestBookings_Filter(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	first := sampleBooking("book_001")
	second := sampleBooking("book_002")
	second.UserID = "user_002"
	second.Status = domain.StatusCancelled
	require.NoError(t, store.SaveBooking(ctx, first))
	require.NoError(t, store.SaveBooking(ctx, second))

	byUser, err := store.Bookings(ctx, domain.BookingFilter{UserID: ptr.Ptr("user_002")})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "book_002", byUser[0].ID)

	byStatus, err := store.Bookings(ctx, domain.BookingFilter{Status: ptr.Ptr(domain.StatusPending)})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "book_001", byStatus[0].ID)
}

func TestDeleteReview_SetsTombstone(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	review := &domain.Review{
		ID:           "rev_001",
		RestaurantID: "rest_001",
		UserID:       "user_001",
		Rating:       5,
		CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveReview(ctx, review))
	require.NoError(t, store.DeleteReview(ctx, "rev_001"))

	reviews, err := store.ReviewsByRestaurant(ctx, "rest_001")
	require.NoError(t, err)
	assert.Empty(t, reviews)

	deleted, err := store.DeletedReviewIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"rev_001"}, deleted)

	// Повторное удаление не дублирует tombstone
	require.NoError(t, store.DeleteReview(ctx, "rev_001"))
	deleted, err = store.DeletedReviewIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, deleted, 1)
}

func TestSaveFavourite_ClearsTombstone(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	favourite := &domain.Favourite{
		ID:           "fav_001",
		UserID:       "user_001",
		RestaurantID: "rest_001",
		CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveFavourite(ctx, favourite))
	require.NoError(t, store.DeleteFavourite(ctx, "fav_001"))

	deleted, err := store.DeletedFavouriteIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"fav_001"}, deleted)

	require.NoError(t, store.SaveFavourite(ctx, favourite))

	deleted, err = store.DeletedFavouriteIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

func TestSaveRating_ReplacesByRestaurant(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRating(ctx, &domain.RatingProjection{RestaurantID: "rest_001", Rating: 4.5, TotalReviews: 2}))
	require.NoError(t, store.SaveRating(ctx, &domain.RatingProjection{RestaurantID: "rest_001", Rating: 4.7, TotalReviews: 3}))

	projection, err := store.RatingByRestaurant(ctx, "rest_001")
	require.NoError(t, err)
	assert.Equal(t, 4.7, projection.Rating)
	assert.Equal(t, 3, projection.TotalReviews)

	_, err = store.RatingByRestaurant(ctx, "rest_999")
	assert.ErrorIs(t, err, overlay.ErrNotFound)
}

func TestPersist_LeavesNoTempFiles(t *testing.T) {
	store, path := newStore(t)

	require.NoError(t, store.SaveBooking(context.Background(), sampleBooking("book_001")))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
