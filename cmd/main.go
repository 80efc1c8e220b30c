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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/create_booking"
	createListingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/create_listing"
	deleteBookingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/delete_booking"
	deleteListingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/delete_listing"
	getBookingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_booking"
	getBookingPaymentsHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_booking_payments"
	getCalendarHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_calendar"
	getDashboardStatsHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_dashboard_stats"
	getListingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_listing"
	getMeHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_me"
	getProfileHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_profile"
	getUserBookingsHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_user_bookings"
	getVendorHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_vendor"
	getVendorBookingsHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_vendor_bookings"
	getVendorListingsHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_vendor_listings"
	getVendorProfileHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/get_vendor_profile"
	initiatePaymentHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/initiate_payment"
	listListingsHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/list_listings"
	listVendorsHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/list_vendors"
	loginHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/register"
	registerVendorHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/register_vendor"
	updateBookingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/update_booking"
	updateListingHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/update_listing"
	updateProfileHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/update_profile"
	updateVendorProfileHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/update_vendor_profile"
	verifyPaymentHandler "github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/config"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
	sessionRepo "github.com/m04kA/SMC-MarketplaceBFF/internal/infra/storage/session"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	accountService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/account"
	bookingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
	listingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
	paymentsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/payments"
	vendorsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/vendors"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
	checkAvailabilityUC "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/get_calendar"
	getDashboardStatsUC "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/get_dashboard_stats"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/metrics"
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

	log.Info("Starting SMC-MarketplaceBFF...")

	// Метрики (если включены). Интерфейсы остаются nil, когда метрики выключены
	var (
		metricsCollector *metrics.Metrics
		upstreamMetrics  gateway.Metrics
		cacheMetrics     cache.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		upstreamMetrics = metricsCollector
		cacheMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных сессий
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(config.Seconds(cfg.Database.ConnMaxLifetime))

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Кэш запросов
	var queryCache cache.Cache = cache.NewNoop()
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		queryCache = cache.NewRedis(redisClient, cacheMetrics)
		log.Info("Query cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	} else {
		log.Info("Query cache disabled")
	}
	cacheTTL := config.Seconds(cfg.Redis.TTL)

	// Клиент API маркетплейса. Токен берется из сессии текущего запроса
	apiClient := gateway.NewClient(
		cfg.API.BaseURL,
		config.Seconds(cfg.API.Timeout),
		session.ContextTokens{},
		upstreamMetrics,
		log,
	)
	log.Info("Marketplace API client initialized (url=%s, timeout=%ds)", cfg.API.BaseURL, cfg.API.Timeout)

	authAPI := marketplace.NewAuthAPI(apiClient)
	userAPI := marketplace.NewUserAPI(apiClient)
	bookingAPI := marketplace.NewBookingAPI(apiClient)
	listingAPI := marketplace.NewListingAPI(apiClient)
	vendorAPI := marketplace.NewVendorAPI(apiClient)
	paymentAPI := marketplace.NewPaymentAPI(apiClient)

	// Сессии
	sessions := session.NewManager(
		sessionRepo.NewRepository(db),
		authAPI,
		queryCache,
		config.Seconds(cfg.Session.TTL),
		config.Seconds(cfg.Session.UserTTL),
		log,
	)
	cookie := handlers.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingAPI, queryCache, cacheTTL, log)
	listingSvc := listingsService.NewService(listingAPI, queryCache, cacheTTL, log)
	vendorSvc := vendorsService.NewService(vendorAPI, queryCache, cacheTTL, log)
	paymentSvc := paymentsService.NewService(paymentAPI, queryCache, cacheTTL, cfg.API.PaymentCallbackURL, log)
	accountSvc := accountService.NewService(authAPI, userAPI, queryCache, cacheTTL, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(listingSvc, bookingSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(listingSvc, bookingSvc, log)
	getDashboardStatsUseCase := getDashboardStatsUC.NewUseCase(bookingSvc, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingSvc, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(sessions, cookie, log)
	logout := logoutHandler.NewHandler(sessions, cookie, log)
	register := registerHandler.NewHandler(accountSvc, log)
	getMe := getMeHandler.NewHandler(accountSvc, log)
	getProfile := getProfileHandler.NewHandler(accountSvc, log)
	updateProfile := updateProfileHandler.NewHandler(accountSvc, log)

	listListings := listListingsHandler.NewHandler(listingSvc, log)
	getListing := getListingHandler.NewHandler(listingSvc, log)
	createListing := createListingHandler.NewHandler(listingSvc, log)
	updateListing := updateListingHandler.NewHandler(listingSvc, log)
	deleteListing := deleteListingHandler.NewHandler(listingSvc, log)
	getVendorListings := getVendorListingsHandler.NewHandler(listingSvc, log)

	listVendors := listVendorsHandler.NewHandler(vendorSvc, log)
	getVendor := getVendorHandler.NewHandler(vendorSvc, log)
	getVendorProfile := getVendorProfileHandler.NewHandler(vendorSvc, log)
	registerVendor := registerVendorHandler.NewHandler(vendorSvc, log)
	updateVendorProfile := updateVendorProfileHandler.NewHandler(vendorSvc, log)

	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVendorBookings := getVendorBookingsHandler.NewHandler(bookingSvc, log)

	vendorStats := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, getDashboardStatsUC.ScopeVendor, log)
	adminStats := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, getDashboardStatsUC.ScopeAdmin, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)

	initiatePayment := initiatePaymentHandler.NewHandler(paymentSvc, log)
	verifyPayment := verifyPaymentHandler.NewHandler(paymentSvc, log)
	getBookingPayments := getBookingPaymentsHandler.NewHandler(paymentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix. Сессия восстанавливается для каждого запроса, анонимная сессия тоже допустима
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session(sessions, cfg.Session.CookieName, log))

	// Один путь может иметь публичный и защищенный методы, поэтому доступ проверяется на уровне маршрута
	authed := func(h http.HandlerFunc) http.Handler { return middleware.Auth(h) }
	// Администратор видит разделы вендора, остальные ограничения проверяет API
	vendorArea := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole(domain.RoleVendor, domain.RoleAdmin)(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole(domain.RoleAdmin)(h)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Аутентификация ---
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	api.HandleFunc("/listings", listListings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/listings/{listingId}", getListing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vendors", listVendors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{vendorId}", getVendor.Handle).Methods(http.MethodGet)

	// Проверка доступности (для анонимных пользователей итог дает сервер)
	api.HandleFunc("/bookings/check-availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Возврат с платежной страницы
	api.HandleFunc("/payments/verify/{reference}", verifyPayment.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют авторизованную сессию)
	// ============================================================

	// --- Профиль ---
	api.Handle("/auth/me", authed(getMe.Handle)).Methods(http.MethodGet)
	api.Handle("/users/me", authed(getProfile.Handle)).Methods(http.MethodGet)
	api.Handle("/users/me", authed(updateProfile.Handle)).Methods(http.MethodPatch)

	// --- Бронирования ---
	api.Handle("/bookings", authed(createBooking.Handle)).Methods(http.MethodPost)
	api.Handle("/bookings", authed(getUserBookings.Handle)).Methods(http.MethodGet)
	api.Handle("/bookings/{bookingId}", authed(getBooking.Handle)).Methods(http.MethodGet)
	api.Handle("/bookings/{bookingId}", authed(updateBooking.Handle)).Methods(http.MethodPatch)
	api.Handle("/bookings/{bookingId}/cancel", authed(cancelBooking.Handle)).Methods(http.MethodPatch)
	api.Handle("/bookings/{bookingId}/payments", authed(getBookingPayments.Handle)).Methods(http.MethodGet)

	// --- Платежи ---
	api.Handle("/payments/initiate", authed(initiatePayment.Handle)).Methods(http.MethodPost)

	// Регистрация вендора доступна любому авторизованному пользователю
	api.Handle("/vendor/profile", authed(registerVendor.Handle)).Methods(http.MethodPost)

	// ============================================================
	// VENDOR ROUTES
	// ============================================================

	api.Handle("/vendor/profile", vendorArea(getVendorProfile.Handle)).Methods(http.MethodGet)
	api.Handle("/vendor/profile", vendorArea(updateVendorProfile.Handle)).Methods(http.MethodPatch)
	api.Handle("/vendor/listings", vendorArea(getVendorListings.Handle)).Methods(http.MethodGet)
	api.Handle("/vendor/bookings", vendorArea(getVendorBookings.Handle)).Methods(http.MethodGet)
	api.Handle("/vendor/dashboard/stats", vendorArea(vendorStats.Handle)).Methods(http.MethodGet)
	api.Handle("/vendor/calendar", vendorArea(getCalendar.Handle)).Methods(http.MethodGet)

	api.Handle("/listings", vendorArea(createListing.Handle)).Methods(http.MethodPost)
	api.Handle("/listings/{listingId}", vendorArea(updateListing.Handle)).Methods(http.MethodPatch)
	api.Handle("/listings/{listingId}", vendorArea(deleteListing.Handle)).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	api.Handle("/admin/dashboard/stats", adminOnly(adminStats.Handle)).Methods(http.MethodGet)
	api.Handle("/bookings/{bookingId}", adminOnly(deleteBooking.Handle)).Methods(http.MethodDelete)

	// Периодическая очистка истекших сессий
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	cleanupDone := make(chan struct{})
	go func() {
		defer close(cleanupDone)
		runSessionCleanup(cleanupCtx, sessions, config.Seconds(cfg.Session.CleanupInterval), log)
	}()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
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

	stopCleanup()
	<-cleanupDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// runSessionCleanup удаляет истекшие сессии каждые interval до отмены ctx
func runSessionCleanup(ctx context.Context, sessions *session.Manager, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessions.Cleanup(ctx)
			if err != nil {
				log.Warn("Session cleanup failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Info("Session cleanup removed %d expired sessions", removed)
			}
		}
	}
}
