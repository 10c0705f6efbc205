package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Len(t, ds.Restaurants(), 5)

	restaurant, ok := ds.RestaurantByID("rest_001")
	require.True(t, ok)
	assert.Equal(t, "Bella Napoli", restaurant.Name)
	assert.Equal(t, 40, restaurant.TotalSeats)
	assert.Equal(t, domain.RestaurantActive, restaurant.Status)

	_, ok = ds.RestaurantByID("rest_999")
	assert.False(t, ok)
}

func TestMenuByRestaurant(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	menu := ds.MenuByRestaurant("rest_001")
	require.NotEmpty(t, menu)
	for _, item := range menu {
		assert.Equal(t, "rest_001", item.RestaurantID)
	}

	assert.Empty(t, ds.MenuByRestaurant("rest_999"))
}

func TestBookings_Filter(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	all := ds.Bookings(domain.BookingFilter{})
	assert.Len(t, all, 4)

	byUser := ds.Bookings(domain.BookingFilter{UserID: ptr.Ptr("user_001")})
	require.Len(t, byUser, 2)
	for _, b := range byUser {
		assert.Equal(t, "user_001", b.UserID)
	}

	confirmed := ds.Bookings(domain.BookingFilter{
		RestaurantID: ptr.Ptr("rest_001"),
		Status:       ptr.Ptr(domain.StatusConfirmed),
	})
	require.Len(t, confirmed, 1)
	assert.Equal(t, "book_001", confirmed[0].ID)
}

func TestReviewsAndFavourites(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	reviews := ds.ReviewsByRestaurant("rest_002")
	assert.Len(t, reviews, 3)

	review, ok := ds.ReviewByID("rev_001")
	require.True(t, ok)
	assert.Equal(t, 5, review.Rating)

	favourites := ds.FavouritesByUser("user_001")
	assert.Len(t, favourites, 2)

	user, ok := ds.UserByID("user_003")
	require.True(t, ok)
	assert.Equal(t, domain.RoleManager, user.Role)
}

func TestReads_ReturnCopies(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	restaurant, ok := ds.RestaurantByID("rest_001")
	require.True(t, ok)
	restaurant.Name = "mutated"

	again, ok := ds.RestaurantByID("rest_001")
	require.True(t, ok)
	assert.Equal(t, "Bella Napoli", again.Name)

	booking, ok := ds.BookingByID("book_001")
	require.True(t, ok)
	booking.Seats = 99

	again2, ok := ds.BookingByID("book_001")
	require.True(t, ok)
	assert.Equal(t, 2, again2.Seats)
}
