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

	_ "github.com/lib/pq"

	confirmBookingHandler "github.com/m04kA/SMC-SlotBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-SlotBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SlotBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SlotBookingService/internal/api/handlers/get_booking"
	"github.com/m04kA/SMC-SlotBookingService/internal/api/router"
	"github.com/m04kA/SMC-SlotBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SlotBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotBookingService/internal/infra/storage/schema"
	slotRepo "github.com/m04kA/SMC-SlotBookingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotBookingService/internal/integrations/emailservice"
	bookingsService "github.com/m04kA/SMC-SlotBookingService/internal/service/bookings"
	confirmBookingUC "github.com/m04kA/SMC-SlotBookingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/SMC-SlotBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SlotBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBookingService/pkg/logger"
	"github.com/m04kA/SMC-SlotBookingService/pkg/metrics"
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

	log.Info("Starting SMC-SlotBookingService...")

	// Инициализируем метрики (если включены)
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

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database")

	// Оборачиваем соединение метриками
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Создаем таблицы (если включено)
	if cfg.Database.AutoMigrate {
		if err := schema.Apply(context.Background(), executor); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema applied")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(executor, cfg.Database.QueryTimeoutDuration())
	slotRepository := slotRepo.NewRepository(executor, cfg.Database.QueryTimeoutDuration())

	// Инициализируем клиент Email Microservice
	clientOpts := []emailservice.Option{
		emailservice.WithRetry(cfg.Notifier.MaxAttempts, cfg.Notifier.BackoffDuration()),
	}
	if metricsCollector != nil {
		clientOpts = append(clientOpts, emailservice.WithMetrics(metricsCollector))
	}
	emailClient := emailservice.NewClient(cfg.Notifier.URL, cfg.Notifier.TimeoutDuration(), log, clientOpts...)
	log.Info("Email client initialized (url=%s timeout=%ds attempts=%d)",
		cfg.Notifier.URL, cfg.Notifier.Timeout, cfg.Notifier.MaxAttempts)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	var conflicts createBookingUC.ConflictRecorder
	if metricsCollector != nil {
		conflicts = metricsCollector
	}
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, conflicts, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(bookingSvc, emailClient, log)

	// Инициализируем handlers и роутер
	handler := router.New(router.Handlers{
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log).Handle,
		CreateBooking:     createBookingHandler.NewHandler(createBookingUseCase, log).Handle,
		ConfirmBooking:    confirmBookingHandler.NewHandler(confirmBookingUseCase, log).Handle,
		GetBooking:        getBookingHandler.NewHandler(bookingSvc, log).Handle,
	}, router.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Logger:      log,
	})
	log.Info("CORS allowed origins: %v", cfg.CORS.AllowedOrigins)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
