package platformapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент авторитетного сервиса платформы.
// Каждый вызов ограничен таймаутом http.Client; любая сетевая ошибка,
// таймаут или 5xx транслируются в ErrServiceUnavailable.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платформы
func NewClient(baseURL string, authToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListRestaurants получает список ресторанов
func (c *Client) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := c.doJSON(ctx, http.MethodGet, "/restaurants", nil, &dtos); err != nil {
		return nil, err
	}

	restaurants := make([]*domain.Restaurant, len(dtos))
	for i := range dtos {
		restaurants[i] = dtos[i].ToDomain()
	}
	return restaurants, nil
}

// GetRestaurant получает ресторан по ID
func (c *Client) GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	var dto RestaurantDTO
	path := fmt.Sprintf("/restaurants/%s", url.PathEscape(restaurantID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// GetMenu получает меню ресторана
func (c *Client) GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	var dtos []MenuItemDTO
	path := fmt.Sprintf("/restaurants/%s/menu", url.PathEscape(restaurantID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	items := make([]*domain.MenuItem, len(dtos))
	for i := range dtos {
		items[i] = dtos[i].ToDomain()
	}
	return items, nil
}

// GetAvailability получает количество свободных мест на слот
func (c *Client) GetAvailability(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error) {
	var dto AvailabilityDTO
	path := fmt.Sprintf("/restaurants/%s/availability?date=%s&timeSlot=%s",
		url.PathEscape(restaurantID), url.QueryEscape(date), url.QueryEscape(string(slot)))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return 0, err
	}
	return dto.Available, nil
}

// ListBookings получает бронирования по фильтру
func (c *Client) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	q := url.Values{}
	if filter.RestaurantID != nil {
		q.Set("restaurantId", *filter.RestaurantID)
	}
	if filter.UserID != nil {
		q.Set("userId", *filter.UserID)
	}
	if filter.Date != nil {
		q.Set("date", *filter.Date)
	}
	if filter.TimeSlot != nil {
		q.Set("timeSlot", string(*filter.TimeSlot))
	}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}

	path := "/bookings"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var dtos []BookingDTO
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, len(dtos))
	for i := range dtos {
		bookings[i] = dtos[i].ToDomain()
	}
	return bookings, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var dto BookingDTO
	path := fmt.Sprintf("/bookings/%s", url.PathEscape(bookingID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// CreateBooking создает бронирование на платформе
func (c *Client) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var dto BookingDTO
	if err := c.doJSON(ctx, http.MethodPost, "/bookings", FromDomainBooking(booking), &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// CancelBooking отменяет бронирование на платформе
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var dto BookingDTO
	path := fmt.Sprintf("/bookings/%s/cancel", url.PathEscape(bookingID))
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// UpdateBookingStatus обновляет статус бронирования на платформе
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	var dto BookingDTO
	path := fmt.Sprintf("/bookings/%s/status", url.PathEscape(bookingID))
	body := map[string]string{"status": string(status)}
	if err := c.doJSON(ctx, http.MethodPatch, path, body, &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// ListReviews получает отзывы ресторана
func (c *Client) ListReviews(ctx context.Context, restaurantID string) ([]*domain.Review, error) {
	var dtos []ReviewDTO
	path := fmt.Sprintf("/reviews?restaurantId=%s", url.QueryEscape(restaurantID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, len(dtos))
	for i := range dtos {
		reviews[i] = dtos[i].ToDomain()
	}
	return reviews, nil
}

// GetReview получает отзыв по ID
func (c *Client) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	var dto ReviewDTO
	path := fmt.Sprintf("/reviews/%s", url.PathEscape(reviewID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// CreateReview создает отзыв на платформе
func (c *Client) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	var dto ReviewDTO
	if err := c.doJSON(ctx, http.MethodPost, "/reviews", FromDomainReview(review), &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// DeleteReview удаляет отзыв на платформе
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	path := fmt.Sprintf("/reviews/%s", url.PathEscape(reviewID))
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListFavourites получает избранное пользователя
func (c *Client) ListFavourites(ctx context.Context, userID string) ([]*domain.Favourite, error) {
	var dtos []FavouriteDTO
	path := fmt.Sprintf("/favourites?userId=%s", url.QueryEscape(userID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	favourites := make([]*domain.Favourite, len(dtos))
	for i := range dtos {
		favourites[i] = dtos[i].ToDomain()
	}
	return favourites, nil
}

// ToggleFavourite переключает избранное на платформе
func (c *Client) ToggleFavourite(ctx context.Context, userID, restaurantID string) (bool, error) {
	var dto ToggleFavouriteDTO
	body := map[string]string{"userId": userID, "restaurantId": restaurantID}
	if err := c.doJSON(ctx, http.MethodPost, "/favourites/toggle", body, &dto); err != nil {
		return false, err
	}
	return dto.IsFavourite, nil
}

// doJSON выполняет запрос к платформе и декодирует ответ в out (если out != nil).
// Маппинг статус-кодов:
//   - 2xx - успех
//   - 401 - ErrUnauthorized (fallback не применяется, требуется переавторизация)
//   - 404 - ErrNotFound (авторитетный ответ, fallback не применяется)
//   - 400/422 - ErrValidation
//   - 5xx и сетевые ошибки - ErrServiceUnavailable (сигнал для fallback)
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевая ошибка или таймаут - платформа недоступна
		return fmt.Errorf("%w: %s %s: %v", ErrServiceUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn("platformapi: %s %s returned 401, session must be re-authenticated", method, path)
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return fmt.Errorf("%w: %s", ErrValidation, errResp.Message)
		}
		return ErrValidation
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s %s returned %d", ErrServiceUnavailable, method, path, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
