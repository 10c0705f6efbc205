package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

// Tombstone kinds
const (
	tombstoneReview    = "review"
	tombstoneFavourite = "favourite"
)

// Store реализация overlay хранилища поверх PostgreSQL.
// Используется при overlay.engine = "postgres" - дает общее durable
// хранилище вместо локального файла. Семантика коллекций та же:
// запись заменяет предыдущую версию по ID целиком.
type Store struct {
	db  DBExecutor
	obs overlay.Observer
}

// New создает PostgreSQL overlay хранилище
func New(db DBExecutor, obs overlay.Observer) *Store {
	if obs == nil {
		obs = overlay.NopObserver{}
	}
	return &Store{db: db, obs: obs}
}

// Bookings возвращает бронирования overlay, удовлетворяющие фильтру
func (s *Store) Bookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"user_id",
		"booking_date",
		"time_slot",
		"seats",
		"status",
		"contact_name",
		"contact_phone",
		"special_requests",
		"created_at",
		"updated_at",
	).From("overlay_bookings")

	if filter.RestaurantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"restaurant_id": *filter.RestaurantID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.TimeSlot != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"time_slot": string(*filter.TimeSlot)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := selectBuilder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Bookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Bookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	s.obs.IncOverlayOp("bookings", "list")
	return scanBookings(rows)
}

// BookingByID возвращает бронирование overlay по ID
func (s *Store) BookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"user_id",
		"booking_date",
		"time_slot",
		"seats",
		"status",
		"contact_name",
		"contact_phone",
		"special_requests",
		"created_at",
		"updated_at",
	).
		From("overlay_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BookingByID - build select query: %v", ErrBuildQuery, err)
	}

	s.obs.IncOverlayOp("bookings", "get")

	var b domain.Booking
	var slot, status string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.RestaurantID,
		&b.UserID,
		&b.Date,
		&slot,
		&b.Seats,
		&status,
		&b.ContactName,
		&b.ContactPhone,
		&b.SpecialRequests,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, overlay.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: BookingByID - scan booking: %v", ErrScanRow, err)
	}

	b.TimeSlot = domain.TimeSlot(slot)
	b.Status = domain.BookingStatus(status)
	return &b, nil
}

// SaveBooking вставляет или заменяет бронирование по ID
func (s *Store) SaveBooking(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Insert("overlay_bookings").
		Columns(
			"id",
			"restaurant_id",
			"user_id",
			"booking_date",
			"time_slot",
			"seats",
			"status",
			"contact_name",
			"contact_phone",
			"special_requests",
			"created_at",
			"updated_at",
		).
		Values(
			booking.ID,
			booking.RestaurantID,
			booking.UserID,
			booking.Date,
			string(booking.TimeSlot),
			booking.Seats,
			string(booking.Status),
			booking.ContactName,
			booking.ContactPhone,
			booking.SpecialRequests,
			booking.CreatedAt,
			booking.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			seats = EXCLUDED.seats,
			contact_name = EXCLUDED.contact_name,
			contact_phone = EXCLUDED.contact_phone,
			special_requests = EXCLUDED.special_requests,
			updated_at = EXCLUDED.updated_at`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveBooking - execute insert: %v", ErrExecQuery, err)
	}

	s.obs.IncOverlayOp("bookings", "save")
	return nil
}

// ReviewsByRestaurant возвращает отзывы overlay для ресторана
func (s *Store) ReviewsByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Review, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"user_id",
		"rating",
		"comment",
		"created_at",
	).
		From("overlay_reviews").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReviewsByRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReviewsByRestaurant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	s.obs.IncOverlayOp("reviews", "list")

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var r domain.Review
		if err := rows.Scan(&r.ID, &r.RestaurantID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ReviewsByRestaurant - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReviewsByRestaurant - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// ReviewByID возвращает отзыв overlay по ID
func (s *Store) ReviewByID(ctx context.Context, id string) (*domain.Review, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"user_id",
		"rating",
		"comment",
		"created_at",
	).
		From("overlay_reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReviewByID - build select query: %v", ErrBuildQuery, err)
	}

	s.obs.IncOverlayOp("reviews", "get")

	var r domain.Review
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&r.ID, &r.RestaurantID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, overlay.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReviewByID - scan review: %v", ErrScanRow, err)
	}

	return &r, nil
}

// SaveReview вставляет или заменяет отзыв по ID
func (s *Store) SaveReview(ctx context.Context, review *domain.Review) error {
	query, args, err := psqlbuilder.Insert("overlay_reviews").
		Columns("id", "restaurant_id", "user_id", "rating", "comment", "created_at").
		Values(review.ID, review.RestaurantID, review.UserID, review.Rating, review.Comment, review.CreatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			rating = EXCLUDED.rating,
			comment = EXCLUDED.comment`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveReview - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveReview - execute insert: %v", ErrExecQuery, err)
	}

	s.obs.IncOverlayOp("reviews", "save")
	return nil
}

// DeleteReview удаляет отзыв и ставит tombstone
func (s *Store) DeleteReview(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("overlay_reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteReview - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteReview - execute delete: %v", ErrExecQuery, err)
	}

	if err := s.addTombstone(ctx, tombstoneReview, id); err != nil {
		return err
	}

	s.obs.IncOverlayOp("reviews", "delete")
	return nil
}

// FavouritesByUser возвращает избранное overlay для пользователя
func (s *Store) FavouritesByUser(ctx context.Context, userID string) ([]*domain.Favourite, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"restaurant_id",
		"created_at",
	).
		From("overlay_favourites").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FavouritesByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FavouritesByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	s.obs.IncOverlayOp("favourites", "list")

	favourites := make([]*domain.Favourite, 0)
	for rows.Next() {
		var f domain.Favourite
		if err := rows.Scan(&f.ID, &f.UserID, &f.RestaurantID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: FavouritesByUser - scan row: %v", ErrScanRow, err)
		}
		favourites = append(favourites, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FavouritesByUser - rows error: %v", ErrScanRow, err)
	}

	return favourites, nil
}

// FavouriteByPair возвращает запись избранного для пары (пользователь, ресторан)
func (s *Store) FavouriteByPair(ctx context.Context, userID, restaurantID string) (*domain.Favourite, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"restaurant_id",
		"created_at",
	).
		From("overlay_favourites").
		Where(squirrel.Eq{"user_id": userID, "restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FavouriteByPair - build select query: %v", ErrBuildQuery, err)
	}

	s.obs.IncOverlayOp("favourites", "get")

	var f domain.Favourite
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.UserID, &f.RestaurantID, &f.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, overlay.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FavouriteByPair - scan favourite: %v", ErrScanRow, err)
	}

	return &f, nil
}

// SaveFavourite вставляет или заменяет запись избранного, снимая tombstone
func (s *Store) SaveFavourite(ctx context.Context, favourite *domain.Favourite) error {
	query, args, err := psqlbuilder.Insert("overlay_favourites").
		Columns("id", "user_id", "restaurant_id", "created_at").
		Values(favourite.ID, favourite.UserID, favourite.RestaurantID, favourite.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveFavourite - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveFavourite - execute insert: %v", ErrExecQuery, err)
	}

	if err := s.removeTombstone(ctx, tombstoneFavourite, favourite.ID); err != nil {
		return err
	}

	s.obs.IncOverlayOp("favourites", "save")
	return nil
}

// DeleteFavourite удаляет запись избранного и ставит tombstone
func (s *Store) DeleteFavourite(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("overlay_favourites").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteFavourite - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteFavourite - execute delete: %v", ErrExecQuery, err)
	}

	if err := s.addTombstone(ctx, tombstoneFavourite, id); err != nil {
		return err
	}

	s.obs.IncOverlayOp("favourites", "delete")
	return nil
}

// RatingByRestaurant возвращает локально пересчитанную проекцию рейтинга
func (s *Store) RatingByRestaurant(ctx context.Context, restaurantID string) (*domain.RatingProjection, error) {
	query, args, err := psqlbuilder.Select(
		"restaurant_id",
		"rating",
		"total_reviews",
	).
		From("overlay_ratings").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RatingByRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	s.obs.IncOverlayOp("ratings", "get")

	var p domain.RatingProjection
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&p.RestaurantID, &p.Rating, &p.TotalReviews)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, overlay.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: RatingByRestaurant - scan rating: %v", ErrScanRow, err)
	}

	return &p, nil
}

// SaveRating вставляет или заменяет проекцию рейтинга ресторана
func (s *Store) SaveRating(ctx context.Context, rating *domain.RatingProjection) error {
	query, args, err := psqlbuilder.Insert("overlay_ratings").
		Columns("restaurant_id", "rating", "total_reviews").
		Values(rating.RestaurantID, rating.Rating, rating.TotalReviews).
		Suffix(`ON CONFLICT (restaurant_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			total_reviews = EXCLUDED.total_reviews`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveRating - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveRating - execute insert: %v", ErrExecQuery, err)
	}

	s.obs.IncOverlayOp("ratings", "save")
	return nil
}

// DeletedReviewIDs возвращает tombstones отзывов
func (s *Store) DeletedReviewIDs(ctx context.Context) ([]string, error) {
	return s.tombstones(ctx, tombstoneReview)
}

// DeletedFavouriteIDs возвращает tombstones избранного
func (s *Store) DeletedFavouriteIDs(ctx context.Context) ([]string, error) {
	return s.tombstones(ctx, tombstoneFavourite)
}

func (s *Store) tombstones(ctx context.Context, kind string) ([]string, error) {
	query, args, err := psqlbuilder.Select("record_id").
		From("overlay_tombstones").
		Where(squirrel.Eq{"kind": kind}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: tombstones - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: tombstones - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: tombstones - scan row: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: tombstones - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

func (s *Store) addTombstone(ctx context.Context, kind, id string) error {
	query, args, err := psqlbuilder.Insert("overlay_tombstones").
		Columns("record_id", "kind").
		Values(id, kind).
		Suffix("ON CONFLICT (record_id, kind) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: addTombstone - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: addTombstone - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *Store) removeTombstone(ctx context.Context, kind, id string) error {
	query, args, err := psqlbuilder.Delete("overlay_tombstones").
		Where(squirrel.Eq{"record_id": id, "kind": kind}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: removeTombstone - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: removeTombstone - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var slot, status string

		err := rows.Scan(
			&b.ID,
			&b.RestaurantID,
			&b.UserID,
			&b.Date,
			&slot,
			&b.Seats,
			&status,
			&b.ContactName,
			&b.ContactPhone,
			&b.SpecialRequests,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.TimeSlot = domain.TimeSlot(slot)
		b.Status = domain.BookingStatus(status)
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
