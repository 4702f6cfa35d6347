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
	"github.com/redis/go-redis/v9"

	adminDashboardHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/admin_dashboard"
	adminExportHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/admin_export"
	authLogoutHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/auth_logout"
	authMeHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/auth_me"
	deleteBookingHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/get_booking"
	healthHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/health"
	listBookingsHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/list_bookings"
	listLocationsHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/list_locations"
	pricingEstimateHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/pricing_estimate"
	submitBookingHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/submit_booking"
	updateBookingHandler "github.com/most-gh/mddroner-booking/internal/api/handlers/update_booking"
	"github.com/most-gh/mddroner-booking/internal/api/middleware"
	"github.com/most-gh/mddroner-booking/internal/config"
	"github.com/most-gh/mddroner-booking/internal/infra/ratelimit"
	bookingRepo "github.com/most-gh/mddroner-booking/internal/infra/storage/booking"
	"github.com/most-gh/mddroner-booking/internal/integrations/ownernotify"
	bookingsService "github.com/most-gh/mddroner-booking/internal/service/bookings"
	dashboardService "github.com/most-gh/mddroner-booking/internal/service/dashboard"
	"github.com/most-gh/mddroner-booking/internal/service/pricing"
	"github.com/most-gh/mddroner-booking/internal/service/session"
	submitBookingUC "github.com/most-gh/mddroner-booking/internal/usecase/submit_booking"
	"github.com/most-gh/mddroner-booking/pkg/dbmetrics"
	"github.com/most-gh/mddroner-booking/pkg/logger"
	"github.com/most-gh/mddroner-booking/pkg/metrics"
)

const (
	healthCheckTimeout  = 3 * time.Second
	limiterCleanupEvery = 10 * time.Minute
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

	log.Info("Starting mddroner-booking...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Уведомления владельцу
	notifier, err := ownernotify.New(cfg.Notifier, log)
	if err != nil {
		log.Fatal("Failed to initialize notifier: %v", err)
	}
	log.Info("Owner notifier: %s", notifier.Name())

	prices := pricing.Prices{
		Base:       cfg.Pricing.Base,
		PerVehicle: cfg.Pricing.PerVehicle,
		PerVideo:   cfg.Pricing.PerVideo,
	}

	// Сервисы и use cases
	sessions := session.NewManager(cfg.Session.JWTSecret, cfg.Session.CookieName, cfg.Session.SecureCookie)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	dashboardSvc := dashboardService.NewService(bookingRepository, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		notifier,
		metricsCollector,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)

	healthChecks := map[string]healthHandler.Check{
		"postgres": db.PingContext,
	}

	// Rate limit на отправку заявок
	var submitLimit func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled {
		settings := ratelimit.Settings{
			Capacity:        cfg.RateLimit.Capacity,
			RefillPerMinute: cfg.RateLimit.RefillPerMinute,
		}

		var limiter ratelimit.Limiter
		switch cfg.RateLimit.Backend {
		case config.RateLimitRedis:
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()

			healthChecks["redis"] = func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}
			limiter = ratelimit.NewRedisLimiter(rdb, settings)
		default:
			memLimiter := ratelimit.NewMemoryLimiter(settings)
			go memLimiter.RunCleanup(limiterCleanupEvery, stopCh)
			limiter = memLimiter
		}

		proxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Failed to parse rate_limit.trusted_proxies: %v", err)
		}

		submitLimit = middleware.RateLimit(limiter, proxies, metricsCollector, log)
		log.Info("Submit rate limit enabled: %v, refill=%.2f/min", limiter, settings.RefillPerMinute)
	} else {
		submitLimit = func(next http.Handler) http.Handler { return next }
	}

	// Инициализируем handlers
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	authMe := authMeHandler.NewHandler()
	authLogout := authLogoutHandler.NewHandler(sessions, log)
	adminDashboard := adminDashboardHandler.NewHandler(dashboardSvc, log)
	adminExport := adminExportHandler.NewHandler(dashboardSvc, log)
	pricingEstimate := pricingEstimateHandler.NewHandler(prices)
	listLocations := listLocationsHandler.NewHandler()
	health := healthHandler.NewHandler(healthChecks, healthCheckTimeout, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix, identity берется из сессионной cookie
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity(sessions, log))

	// --- Публичные ---
	api.Handle("/bookings", submitLimit(http.HandlerFunc(submitBooking.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/me", authMe.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", authLogout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/pricing/estimate", pricingEstimate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)

	// --- Только admin (проверка роли в сервисах) ---
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/admin/dashboard", adminDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/export", adminExport.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи (метрики пула, очистка лимитера)
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
