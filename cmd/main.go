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

	cancelBookingHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/cancel_booking"
	checkExtensionHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/check_extension"
	confirmExtensionHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/confirm_extension"
	getAssistanceLinksHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/get_assistance_links"
	getBookingHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/get_booking"
	getProfileHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/get_profile"
	listBookingsHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/list_bookings"
	modifyBookingHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/modify_booking"
	requestDataDeletionHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/request_data_deletion"
	requestLoginCodeHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/request_login_code"
	updateProfileHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/update_profile"
	verifyLoginCodeHandler "github.com/voltride/VR-CustomerPortal/internal/api/handlers/verify_login_code"
	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	"github.com/voltride/VR-CustomerPortal/internal/config"
	sessionRepo "github.com/voltride/VR-CustomerPortal/internal/infra/storage/extensionsession"
	platformClient "github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	authService "github.com/voltride/VR-CustomerPortal/internal/service/auth"
	bookingsService "github.com/voltride/VR-CustomerPortal/internal/service/bookings"
	profileService "github.com/voltride/VR-CustomerPortal/internal/service/profile"
	checkExtensionUC "github.com/voltride/VR-CustomerPortal/internal/usecase/check_extension"
	confirmExtensionUC "github.com/voltride/VR-CustomerPortal/internal/usecase/confirm_extension"
	"github.com/voltride/VR-CustomerPortal/pkg/logger"
	"github.com/voltride/VR-CustomerPortal/pkg/metrics"
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

	log.Info("Starting VR-CustomerPortal...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс портала: в нем считаются окна возврата и "предстоящие"
	location, err := time.LoadLocation(cfg.Portal.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Portal.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (сессии пролонгации)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента платформы аренды
	platform := platformClient.NewClient(
		cfg.RentalPlatform.URL,
		time.Duration(cfg.RentalPlatform.Timeout)*time.Second,
		log,
	)
	log.Info("Rental platform client initialized (url=%s timeout=%ds)",
		cfg.RentalPlatform.URL, cfg.RentalPlatform.Timeout)

	// Инициализируем репозиторий сессий пролонгации
	sessionRepository := sessionRepo.NewRepository(db)

	// Инициализируем сервисы
	authSvc := authService.NewService(platform, log)
	bookingSvc := bookingsService.NewService(platform, &bookingsService.RealTimeProvider{}, location, log)
	profileSvc := profileService.NewService(platform, log)

	// Инициализируем use cases
	checkExtensionUseCase := checkExtensionUC.NewUseCase(sessionRepository, platform, log)
	confirmExtensionUseCase := confirmExtensionUC.NewUseCase(sessionRepository, platform, log)

	// Инициализируем handlers
	requestLoginCode := requestLoginCodeHandler.NewHandler(authSvc, log)
	verifyLoginCode := verifyLoginCodeHandler.NewHandler(authSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	modifyBooking := modifyBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	checkExtension := checkExtensionHandler.NewHandler(checkExtensionUseCase, log)
	confirmExtension := confirmExtensionHandler.NewHandler(confirmExtensionUseCase, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profileSvc, log)
	requestDataDeletion := requestDataDeletionHandler.NewHandler(profileSvc, log)
	getAssistanceLinks := getAssistanceLinksHandler.NewHandler(
		bookingSvc,
		profileSvc,
		cfg.Assistance.Phone,
		cfg.Assistance.PhoneDisplay,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/customer-portal").Subrouter()
	api.Use(middleware.Language)

	// ============================================================
	// PUBLIC ROUTES (вход по одноразовому коду)
	// ============================================================

	api.HandleFunc("/login", requestLoginCode.Handle).Methods(http.MethodPost)
	api.HandleFunc("/verify-code", verifyLoginCode.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/modify", modifyBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPut)

	// --- Пролонгация контракта ---
	protected.HandleFunc("/bookings/{bookingId}/extend/check", checkExtension.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/extend/confirm", confirmExtension.Handle).Methods(http.MethodPost)

	// --- Виджет помощи ---
	protected.HandleFunc("/bookings/{bookingId}/assistance", getAssistanceLinks.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	protected.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/profile/delete-request", requestDataDeletion.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}
