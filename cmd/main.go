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
	"golang.org/x/sync/errgroup"

	cancelPaymentHandler "github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers/cancel_payment"
	capturePaymentHandler "github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers/capture_payment"
	checkAvailabilityHandler "github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers/get_booking"
	getTimeSlotsHandler "github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers/get_time_slots"
	refundPaymentHandler "github.com/m04kA/SMC-SlotPaymentService/internal/api/handlers/refund_payment"
	"github.com/m04kA/SMC-SlotPaymentService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotPaymentService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-SlotPaymentService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-SlotPaymentService/internal/integrations/notifications"
	"github.com/m04kA/SMC-SlotPaymentService/internal/integrations/paypal"
	bookingsService "github.com/m04kA/SMC-SlotPaymentService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-SlotPaymentService/internal/service/calendar"
	cancelPaymentUC "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/cancel_payment"
	capturePaymentUC "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/capture_payment"
	checkAvailabilityUC "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/create_booking"
	refundPaymentUC "github.com/m04kA/SMC-SlotPaymentService/internal/usecase/refund_payment"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/metrics"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/mq"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SlotPaymentService...")
	log.Info("Configuration loaded from %s (timezone=%s)", configPath, cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
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

	// dbRecorder == nil, если метрики выключены
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	timeslotRepository := timeslotRepo.NewRepository(wrappedDB)

	// Инициализируем интеграции
	paypalClient := paypal.NewClient(paypal.Config{
		BaseURL:      cfg.PayPal.BaseURL,
		ClientID:     cfg.PayPal.ClientID,
		ClientSecret: cfg.PayPal.ClientSecret,
		Currency:     cfg.PayPal.Currency,
		ReturnURL:    cfg.PayPal.ReturnURL,
		CancelURL:    cfg.PayPal.CancelURL,
		Timeout:      time.Duration(cfg.PayPal.Timeout) * time.Second,
	}, log)
	log.Info("PayPal client initialized (base_url=%s, currency=%s)", cfg.PayPal.BaseURL, cfg.PayPal.Currency)

	var (
		publisher   notifications.Publisher
		mqPublisher *mq.Publisher
	)
	if cfg.Notifications.Enabled {
		mqPublisher, err = mq.NewPublisher(cfg.Notifications.AMQPURL, cfg.Notifications.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		publisher = mqPublisher
		log.Info("Notification events are published to exchange %s", cfg.Notifications.Exchange)
	} else {
		publisher = notifications.NewLogPublisher(log)
		log.Warn("Notifications disabled, events are only logged")
	}
	notifier := notifications.NewSender(publisher, time.Duration(cfg.Notifications.PublishTimeout)*time.Second, log)

	if cfg.Metrics.Enabled {
		paypalClient.WithMetrics(metricsCollector)
		notifier.WithMetrics(metricsCollector)
	}

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(timeslotRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, calendarSvc, log)

	// Инициализируем use cases
	location := cfg.Booking.Location()

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, location, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		calendarSvc,
		paypalClient,
		notifier,
		txMgr,
		location,
		log,
	)

	capturePaymentUseCase := capturePaymentUC.NewUseCase(
		bookingRepository,
		paypalClient,
		notifier,
		txMgr,
		log,
	)

	cancelPaymentUseCase := cancelPaymentUC.NewUseCase(bookingRepository, calendarSvc, txMgr, log)

	refundPaymentUseCase := refundPaymentUC.NewUseCase(bookingRepository, paypalClient, notifier, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(bookingSvc, log)
	capturePayment := capturePaymentHandler.NewHandler(capturePaymentUseCase, log)
	cancelPayment := cancelPaymentHandler.NewHandler(cancelPaymentUseCase, log)
	refundPayment := refundPaymentHandler.NewHandler(refundPaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.Server.RateLimitPerMinute > 0 {
		api.Use(middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute, cfg.Server.RateLimitBurst, log).Middleware())
		log.Info("Rate limit: %d requests per minute per IP (burst %d)",
			cfg.Server.RateLimitPerMinute, cfg.Server.RateLimitBurst)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Бронирования ---
	api.HandleFunc("/bookings/check-availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	api.HandleFunc("/time-slots/{date}", getTimeSlots.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	api.HandleFunc("/payments/capture", capturePayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/{orderId}/cancel", cancelPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	admin.HandleFunc("/payments/refund", refundPayment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		// Останавливаем сбор метрик connection pool
		close(stopMetricsCh)

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		if mqPublisher != nil {
			if err := mqPublisher.Close(); err != nil {
				log.Warn("Failed to close message broker connection: %v", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("%v", err)
		return
	}

	log.Info("Server stopped gracefully")
}
