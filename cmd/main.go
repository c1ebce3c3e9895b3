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

	cancelReservationHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/create_reservation"
	getAvailableKartsHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/get_available_karts"
	getMonthlyFrequencyHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/get_monthly_frequency"
	getReservationHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/get_reservation"
	getRevenueReportHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/get_revenue_report"
	getTariffsHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/get_tariffs"
	getWeeklySlotHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/get_weekly_slot"
	listReservationsHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/list_reservations"
	removeFromWeeklySlotsHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/remove_from_weekly_slots"
	replaceDiscountRangesHandler "github.com/m04kA/SMC-KartingService/internal/api/handlers/replace_discount_ranges"
	"github.com/m04kA/SMC-KartingService/internal/api/middleware"
	"github.com/m04kA/SMC-KartingService/internal/config"
	clientRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/client"
	invoiceRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/invoice"
	kartRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/kart"
	reservationRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/reservation"
	tariffRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/tariff"
	weeklySlotRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/weeklyslot"
	"github.com/m04kA/SMC-KartingService/internal/integrations/notifier"
	discountsService "github.com/m04kA/SMC-KartingService/internal/service/discounts"
	reportsService "github.com/m04kA/SMC-KartingService/internal/service/reports"
	reservationsService "github.com/m04kA/SMC-KartingService/internal/service/reservations"
	tariffsService "github.com/m04kA/SMC-KartingService/internal/service/tariffs"
	weeklySlotsService "github.com/m04kA/SMC-KartingService/internal/service/weeklyslots"
	createReservationUC "github.com/m04kA/SMC-KartingService/internal/usecase/create_reservation"
	getAvailableKartsUC "github.com/m04kA/SMC-KartingService/internal/usecase/get_available_karts"
	"github.com/m04kA/SMC-KartingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
	"github.com/m04kA/SMC-KartingService/pkg/metrics"
	"github.com/m04kA/SMC-KartingService/pkg/txmanager"
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

	log.Info("Starting %s...", cfg.Metrics.ServiceName)

	// Метрики (nil, если выключены: все методы nil-безопасны)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.Booking.SerializableRetries)

	// Публикатор событий о подтверждённых бронированиях
	var eventPublisher createReservationUC.Notifier
	if cfg.RabbitMQ.Enabled {
		publisher := notifier.NewPublisher(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Queue,
			time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second,
			log,
		)
		defer publisher.Close()
		eventPublisher = publisher
		log.Info("RabbitMQ publisher enabled (queue=%s)", cfg.RabbitMQ.Queue)
	} else {
		eventPublisher = notifier.NewNopPublisher(log)
		log.Warn("RabbitMQ disabled: reservation events will not be published")
	}

	// Репозитории
	clientRepository := clientRepo.NewRepository(wrappedDB)
	tariffRepository := tariffRepo.NewRepository(wrappedDB)
	kartRepository := kartRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB, cfg.Booking.TimelineLockKey)
	invoiceRepository := invoiceRepo.NewRepository(wrappedDB)
	weeklySlotRepository := weeklySlotRepo.NewRepository(wrappedDB)

	// Сервисы
	discountSvc := discountsService.NewService(clientRepository, tariffRepository, log)
	weeklySlotSvc := weeklySlotsService.NewService(reservationRepository, weeklySlotRepository, log)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		invoiceRepository,
		clientRepository,
		weeklySlotSvc,
		log,
	)
	reportSvc := reportsService.NewService(reservationRepository, log)
	tariffSvc := tariffsService.NewService(tariffRepository, txMgr, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		clientRepository,
		tariffRepository,
		discountSvc,
		kartRepository,
		reservationRepository,
		invoiceRepository,
		eventPublisher,
		weeklySlotSvc,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableKartsUseCase := getAvailableKartsUC.NewUseCase(
		tariffRepository,
		kartRepository,
		reservationRepository,
		log,
	)

	// Handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableKarts := getAvailableKartsHandler.NewHandler(getAvailableKartsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getMonthlyFrequency := getMonthlyFrequencyHandler.NewHandler(reservationSvc, log)
	getWeeklySlot := getWeeklySlotHandler.NewHandler(weeklySlotSvc, log)
	removeFromWeeklySlots := removeFromWeeklySlotsHandler.NewHandler(weeklySlotSvc, log)
	getRevenueReport := getRevenueReportHandler.NewHandler(reportSvc, log)
	getTariffs := getTariffsHandler.NewHandler(tariffSvc, log)
	replaceDiscountRanges := replaceDiscountRangesHandler.NewHandler(tariffSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{clientId}/monthly-frequency", getMonthlyFrequency.Handle).Methods(http.MethodGet)

	// --- Карты ---
	api.HandleFunc("/karts/availability", getAvailableKarts.Handle).Methods(http.MethodGet)

	// --- Недельные снимки ---
	api.HandleFunc("/weekly-slots/reservations/{reservationId}", removeFromWeeklySlots.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/weekly-slots/{year}/{week}", getWeeklySlot.Handle).Methods(http.MethodGet)

	// --- Отчёты и тарифы ---
	api.HandleFunc("/reports/revenue/{dimension}", getRevenueReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tariffs", getTariffs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tariffs/discounts/{kind}", replaceDiscountRanges.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
