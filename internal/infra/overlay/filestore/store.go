package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
)

// Store файловая реализация overlay хранилища.
// Все операции проходят под одним мьютексом: каждая запись загружает полное
// состояние, изменяет его и заменяет файл целиком. Это исключает потерянные
// обновления при чередующихся модификациях из разных менеджеров.
type Store struct {
	mu   sync.Mutex
	path string
	obs  overlay.Observer
}

// New создает файловое overlay хранилище
func New(path string, obs overlay.Observer) *Store {
	if obs == nil {
		obs = overlay.NopObserver{}
	}
	return &Store{path: path, obs: obs}
}

// Bookings возвращает бронирования overlay, удовлетворяющие фильтру
func (s *Store) Bookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	s.obs.IncOverlayOp("bookings", "list")

	result := make([]*domain.Booking, 0)
	for _, rec := range state.Bookings {
		b := rec.toDomain()
		if filter.Matches(b) {
			result = append(result, b)
		}
	}
	return result, nil
}

// BookingByID возвращает бронирование overlay по ID
func (s *Store) BookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	s.obs.IncOverlayOp("bookings", "get")

	for _, rec := range state.Bookings {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return nil, overlay.ErrNotFound
}

// SaveBooking вставляет или заменяет бронирование по ID
func (s *Store) SaveBooking(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	rec := bookingToRecord(booking)
	replaced := false
	for i := range state.Bookings {
		if state.Bookings[i].ID == rec.ID {
			state.Bookings[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		state.Bookings = append(state.Bookings, rec)
	}

	s.obs.IncOverlayOp("bookings", "save")
	return s.persist(state)
}

// ReviewsByRestaurant возвращает отзывы overlay для ресторана
func (s *Store) ReviewsByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	s.obs.IncOverlayOp("reviews", "list")

	result := make([]*domain.Review, 0)
	for _, rec := range state.Reviews {
		if rec.RestaurantID == restaurantID {
			result = append(result, rec.toDomain())
		}
	}
	return result, nil
}

// ReviewByID возвращает отзыв overlay по ID
func (s *Store) ReviewByID(ctx context.Context, id string) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	s.obs.IncOverlayOp("reviews", "get")

	for _, rec := range state.Reviews {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return nil, overlay.ErrNotFound
}

// SaveReview вставляет или заменяет отзыв по ID
func (s *Store) SaveReview(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	rec := reviewToRecord(review)
	replaced := false
	for i := range state.Reviews {
		if state.Reviews[i].ID == rec.ID {
			state.Reviews[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		state.Reviews = append(state.Reviews, rec)
	}

	s.obs.IncOverlayOp("reviews", "save")
	return s.persist(state)
}

// DeleteReview удаляет отзыв из overlay и ставит tombstone, чтобы отзыв
// из встроенного датасета с тем же ID исключался при чтении
func (s *Store) DeleteReview(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	filtered := state.Reviews[:0]
	for _, rec := range state.Reviews {
		if rec.ID != id {
			filtered = append(filtered, rec)
		}
	}
	state.Reviews = filtered

	if !containsString(state.DeletedReviews, id) {
		state.DeletedReviews = append(state.DeletedReviews, id)
	}

	s.obs.IncOverlayOp("reviews", "delete")
	return s.persist(state)
}

// FavouritesByUser возвращает избранное overlay для пользователя
func (s *Store) FavouritesByUser(ctx context.Context, userID string) ([]*domain.Favourite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	s.obs.IncOverlayOp("favourites", "list")

	result := make([]*domain.Favourite, 0)
	for _, rec := range state.Favourites {
		if rec.UserID == userID {
			result = append(result, rec.toDomain())
		}
	}
	return result, nil
}

// FavouriteByPair возвращает запись избранного для пары (пользователь, ресторан)
func (s *Store) FavouriteByPair(ctx context.Context, userID, restaurantID string) (*domain.Favourite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	s.obs.IncOverlayOp("favourites", "get")

	for _, rec := range state.Favourites {
		if rec.UserID == userID && rec.RestaurantID == restaurantID {
			return rec.toDomain(), nil
		}
	}
	return nil, overlay.ErrNotFound
}

// SaveFavourite вставляет или заменяет запись избранного по ID
func (s *Store) SaveFavourite(ctx context.Context, favourite *domain.Favourite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	rec := favouriteToRecord(favourite)
	replaced := false
	for i := range state.Favourites {
		if state.Favourites[i].ID == rec.ID {
			state.Favourites[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		state.Favourites = append(state.Favourites, rec)
	}

	// Повторное добавление снимает tombstone
	state.DeletedFavourites = removeString(state.DeletedFavourites, rec.ID)

	s.obs.IncOverlayOp("favourites", "save")
	return s.persist(state)
}

// DeleteFavourite удаляет запись избранного и ставит tombstone
func (s *Store) DeleteFavourite(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	filtered := state.Favourites[:0]
	for _, rec := range state.Favourites {
		if rec.ID != id {
			filtered = append(filtered, rec)
		}
	}
	state.Favourites = filtered

	if !containsString(state.DeletedFavourites, id) {
		state.DeletedFavourites = append(state.DeletedFavourites, id)
	}

	s.obs.IncOverlayOp("favourites", "delete")
	return s.persist(state)
}

// RatingByRestaurant возвращает локально пересчитанную проекцию рейтинга
func (s *Store) RatingByRestaurant(ctx context.Context, restaurantID string) (*domain.RatingProjection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	s.obs.IncOverlayOp("ratings", "get")

	for _, rec := range state.Ratings {
		if rec.RestaurantID == restaurantID {
			return rec.toDomain(), nil
		}
	}
	return nil, overlay.ErrNotFound
}

// SaveRating вставляет или заменяет проекцию рейтинга ресторана
func (s *Store) SaveRating(ctx context.Context, rating *domain.RatingProjection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return err
	}

	rec := ratingToRecord(rating)
	replaced := false
	for i := range state.Ratings {
		if state.Ratings[i].RestaurantID == rec.RestaurantID {
			state.Ratings[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		state.Ratings = append(state.Ratings, rec)
	}

	s.obs.IncOverlayOp("ratings", "save")
	return s.persist(state)
}

// DeletedReviewIDs возвращает tombstones отзывов
func (s *Store) DeletedReviewIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]string{}, state.DeletedReviews...), nil
}

// DeletedFavouriteIDs возвращает tombstones избранного
func (s *Store) DeletedFavouriteIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]string{}, state.DeletedFavourites...), nil
}

// load читает полное состояние файла; отсутствующий файл трактуется как пустое состояние
func (s *Store) load() (*fileState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyState(), nil
		}
		return nil, fmt.Errorf("filestore: failed to read %s: %w", s.path, err)
	}

	if len(data) == 0 {
		return emptyState(), nil
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("filestore: failed to parse %s: %w", s.path, err)
	}
	return &state, nil
}

// persist заменяет файл целиком через временный файл и rename
func (s *Store) persist(state *fileState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".overlay-*.json")
	if err != nil {
		return fmt.Errorf("filestore: failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: failed to replace %s: %w", s.path, err)
	}
	return nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func removeString(list []string, v string) []string {
	result := list[:0]
	for _, s := range list {
		if s != v {
			result = append(result, s)
		}
	}
	return result
}
