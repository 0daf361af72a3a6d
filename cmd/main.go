package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/admin_login"
	assistantMessageHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/assistant_message"
	createBackupHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/create_backup"
	createBookingHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_booking"
	getCourtHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_court"
	getDailyReportHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_daily_report"
	getDashboardHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/get_dashboard"
	listBookingsHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/list_bookings"
	listCourtsHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/list_courts"
	purgeBookingsHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/purge_bookings"
	updateBookingStatusHandler "github.com/m04kA/CourtBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/CourtBookingService/internal/api/middleware"
	"github.com/m04kA/CourtBookingService/internal/config"
	"github.com/m04kA/CourtBookingService/internal/domain"
	courtsCache "github.com/m04kA/CourtBookingService/internal/infra/cache/courts"
	"github.com/m04kA/CourtBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/client"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/CourtBookingService/internal/infra/storage/schema"
	assistantService "github.com/m04kA/CourtBookingService/internal/service/assistant"
	authService "github.com/m04kA/CourtBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/CourtBookingService/internal/service/bookings"
	courtsService "github.com/m04kA/CourtBookingService/internal/service/courts"
	maintenanceService "github.com/m04kA/CourtBookingService/internal/service/maintenance"
	reportsService "github.com/m04kA/CourtBookingService/internal/service/reports"
	createBookingUC "github.com/m04kA/CourtBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/CourtBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/CourtBookingService/pkg/keylock"
	"github.com/m04kA/CourtBookingService/pkg/logger"
	"github.com/m04kA/CourtBookingService/pkg/metrics"
	"github.com/m04kA/CourtBookingService/pkg/txmanager"
)

// bookingEvents публикация событий бронирований (RabbitMQ или заглушка)
type bookingEvents interface {
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error
	PublishBookingStatusChanged(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

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

	log.Info("Starting CourtBookingService...")

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены), без них коллектор nil и все вызовы пустые
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	if cfg.Database.AutoMigrate {
		if err := schema.Apply(context.Background(), wrappedDB); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema applied")
	}

	// Репозитории и транзакции
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	slotLocker := keylock.New()

	// Кэш кортов в redis (опционально)
	var courtCache courtsService.CourtCache
	if cfg.Redis.Enabled {
		redisClient, err := courtsCache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, court cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			courtCache = courtsCache.NewCache(redisClient, cfg.Redis.KeyPrefix,
				time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second)
			log.Info("Court cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTLSeconds)
		}
	}

	// События в RabbitMQ (опционально)
	var publisher bookingEvents = events.NopPublisher{}
	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err := events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Warn("RabbitMQ unavailable, booking events disabled: %v", err)
		} else {
			defer rabbitPublisher.Close()
			publisher = rabbitPublisher
			log.Info("Booking events enabled (exchange=%s)", cfg.RabbitMQ.Exchange)
		}
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		courtRepository,
		txMgr,
		slotLocker,
		publisher,
		metricsCollector,
		loc,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		courtRepository,
		loc,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, publisher, log)
	courtSvc := courtsService.NewService(courtRepository, courtCache, log)
	authSvc := authService.NewService(
		cfg.Admin.PasswordHash,
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTLMinutes)*time.Minute,
		log,
	)
	reportSvc := reportsService.NewService(bookingRepository, txMgr, loc, log)
	maintenanceSvc := maintenanceService.NewService(
		bookingRepository,
		clientRepository,
		courtRepository,
		txMgr,
		cfg.Backup.Dir,
		cfg.Backup.RetentionDays,
		loc,
		log,
	)
	assistantSvc := assistantService.NewService(courtSvc, getAvailableSlotsUseCase, cfg.Booking.BookingURL, log)

	// Инициализируем handlers
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	assistantMessage := assistantMessageHandler.NewHandler(assistantSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(reportSvc, log)
	getDailyReport := getDailyReportHandler.NewHandler(reportSvc, log)
	createBackup := createBackupHandler.NewHandler(maintenanceSvc, log)
	purgeBookings := purgeBookingsHandler.NewHandler(maintenanceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/assistant/messages", assistantMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/purge", purgeBookings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reports/daily", getDailyReport.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/backup", createBackup.Handle).Methods(http.MethodPost)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
