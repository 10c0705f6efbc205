package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addFavouriteHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/add_favourite"
	cancelBookingHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_review"
	deleteReviewHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/delete_review"
	getAvailabilityHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_booking"
	getMenuHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_menu"
	getRestaurantHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_restaurant"
	getRestaurantBookingsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_restaurant_bookings"
	getReviewsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_reviews"
	getUserBookingsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_bookings"
	getUserFavouritesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_favourites"
	listRestaurantsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/list_restaurants"
	removeFavouriteHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/remove_favourite"
	toggleFavouriteHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/toggle_favourite"
	updateBookingStatusHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay/filestore"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay/pgstore"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/seed"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
	"github.com/m04kA/SMC-RestaurantService/internal/resolver"
	bookingsService "github.com/m04kA/SMC-RestaurantService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-RestaurantService/internal/service/catalog"
	favouritesService "github.com/m04kA/SMC-RestaurantService/internal/service/favourites"
	reviewsService "github.com/m04kA/SMC-RestaurantService/internal/service/reviews"
	createBookingUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-RestaurantService/pkg/keymutex"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RestaurantService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем встроенный seed датасет (Tier 2)
	dataset, err := seed.Load()
	if err != nil {
		log.Fatal("Failed to load seed dataset: %v", err)
	}
	log.Info("Seed dataset loaded: %d restaurants", len(dataset.Restaurants()))

	// Инициализируем overlay хранилище (Tier 1)
	var overlayObs overlay.Observer = overlay.NopObserver{}
	if cfg.Metrics.Enabled {
		overlayObs = metricsCollector
	}

	var overlayStore overlay.Store
	switch cfg.Overlay.Engine {
	case config.OverlayEnginePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Overlay storage: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		overlayStore = pgstore.New(db, overlayObs)
	default:
		log.Info("Overlay storage: file (%s)", cfg.Overlay.FilePath)
		overlayStore = filestore.New(cfg.Overlay.FilePath, overlayObs)
	}

	// Инициализируем клиента платформы
	platformClient := platformapi.NewClient(
		cfg.Platform.URL,
		cfg.Platform.AuthToken,
		time.Duration(cfg.Platform.Timeout)*time.Second,
		log,
	)
	log.Info("Platform client initialized (url=%s, timeout=%ds)", cfg.Platform.URL, cfg.Platform.Timeout)

	// Инициализируем resolver
	var resolverObs resolver.Observer = resolver.NopObserver{}
	if cfg.Metrics.Enabled {
		resolverObs = metricsCollector
	}
	res := resolver.New(log, resolverObs)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(res, platformClient, dataset, overlayStore, log)
	bookingSvc := bookingsService.NewService(res, platformClient, dataset, overlayStore, log)
	reviewSvc := reviewsService.NewService(res, platformClient, dataset, overlayStore, log)
	favouriteSvc := favouritesService.NewService(res, platformClient, dataset, overlayStore, log)

	// Инициализируем use cases
	slotLocker := keymutex.New()
	createBookingUseCase := createBookingUC.NewUseCase(bookingSvc, catalogSvc, slotLocker, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingSvc, log)

	// Инициализируем handlers
	listRestaurants := listRestaurantsHandler.NewHandler(catalogSvc, log)
	getRestaurant := getRestaurantHandler.NewHandler(catalogSvc, log)
	getMenu := getMenuHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReviews := getReviewsHandler.NewHandler(reviewSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)
	toggleFavourite := toggleFavouriteHandler.NewHandler(favouriteSvc, log)
	addFavourite := addFavouriteHandler.NewHandler(favouriteSvc, log)
	removeFavourite := removeFavouriteHandler.NewHandler(favouriteSvc, log)
	getUserFavourites := getUserFavouritesHandler.NewHandler(favouriteSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог ресторанов
	api.HandleFunc("/restaurants", listRestaurants.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/menu", getMenu.Handle).Methods(http.MethodGet)

	// Доступность слотов
	api.HandleFunc("/restaurants/{restaurantId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Отзывы ресторана
	api.HandleFunc("/restaurants/{restaurantId}/reviews", getReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Бронирования ресторана (для менеджеров)
	protected.HandleFunc("/restaurants/{restaurantId}/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}", deleteReview.Handle).Methods(http.MethodDelete)

	// --- Избранное ---
	protected.HandleFunc("/favourites/toggle", toggleFavourite.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/favourites", addFavourite.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/favourites/{restaurantId}", removeFavourite.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{userId}/favourites", getUserFavourites.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
