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

	cancelBookingHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/delete_booking"
	forceSetStatusHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/force_set_status"
	getAvailableSlotsHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/get_booking"
	getResourceBookingsHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/get_resource_bookings"
	getScheduleHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/get_schedule"
	updateBookingStatusHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/update_schedule"
	"github.com/PKOOOO/cosmix-booking-service/internal/api/middleware"
	"github.com/PKOOOO/cosmix-booking-service/internal/config"
	paymentConsumer "github.com/PKOOOO/cosmix-booking-service/internal/consumer"
	bookingRepo "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/schedule"
	notifyServiceClient "github.com/PKOOOO/cosmix-booking-service/internal/integrations/notifyservice"
	bookingsService "github.com/PKOOOO/cosmix-booking-service/internal/service/bookings"
	scheduleService "github.com/PKOOOO/cosmix-booking-service/internal/service/schedule"
	createBookingUC "github.com/PKOOOO/cosmix-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/PKOOOO/cosmix-booking-service/internal/usecase/get_available_slots"
	transitionStatusUC "github.com/PKOOOO/cosmix-booking-service/internal/usecase/transition_status"
	"github.com/PKOOOO/cosmix-booking-service/pkg/dbmetrics"
	"github.com/PKOOOO/cosmix-booking-service/pkg/logger"
	"github.com/PKOOOO/cosmix-booking-service/pkg/metrics"
	"github.com/PKOOOO/cosmix-booking-service/pkg/mq"
	"github.com/PKOOOO/cosmix-booking-service/pkg/simpletxmanager"
	"github.com/PKOOOO/cosmix-booking-service/pkg/txmanager"
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

	log.Info("Starting Cosmix-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент сервиса уведомлений (опционально)
	var notifier createBookingUC.Notifier
	if cfg.NotifyService.Enabled {
		notifier = notifyServiceClient.NewClient(
			cfg.NotifyService.URL,
			time.Duration(cfg.NotifyService.Timeout)*time.Second,
			log,
		)
		log.Info("NotifyService client initialized (url=%s, timeout=%ds)",
			cfg.NotifyService.URL, cfg.NotifyService.Timeout)
	}

	// Публикация событий в RabbitMQ (опционально)
	var events createBookingUC.EventPublisher
	var publisher *mq.Publisher
	if cfg.AMQP.Enabled {
		publisher, err = mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ publisher: %v", err)
		}
		defer publisher.Close()
		events = publisher
		log.Info("AMQP publisher initialized (exchange=%s)", cfg.AMQP.Exchange)
	}

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		timeProvider,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		txMgr,
		notifier,
		events,
		timeProvider,
		log,
	)

	transitionStatusUseCase := transitionStatusUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	forceSetStatus := forceSetStatusHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(transitionStatusUseCase, log)
	getResourceBookings := getResourceBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Consumer платёжных событий (опционально)
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	if cfg.AMQP.Enabled {
		consumer, err := mq.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, paymentConsumer.PaymentKeys)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ consumer: %v", err)
		}
		defer consumer.Close()

		payments := paymentConsumer.NewPaymentConsumer(consumer, transitionStatusUseCase, log)
		go func() {
			if err := payments.Run(consumerCtx); err != nil {
				log.Error("Payment consumer stopped with error: %v", err)
			}
		}()
		log.Info("AMQP payment consumer started (queue=%s)", cfg.AMQP.Queue)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты услуги на ресурсе
	api.HandleFunc("/resources/{resourceId}/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание ресурса
	api.HandleFunc("/resources/{resourceId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Создание бронирования — клиентский публичный маршрут
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Пакетный перевод статусов (регистрируется до маршрута с {bookingId})
	protected.HandleFunc("/bookings/status", updateBookingStatus.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Ручная правка статуса владельцем ресурса
	protected.HandleFunc("/bookings/{bookingId}/status", forceSetStatus.Handle).Methods(http.MethodPut)

	// --- Управление ресурсом ---
	protected.HandleFunc("/resources/{resourceId}/bookings", getResourceBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/resources/{resourceId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем consumer и сбор метрик
	stopConsumer()
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
