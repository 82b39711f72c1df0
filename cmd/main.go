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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	aiChatHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/ai_chat"
	bookingFlowHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/booking_flow"
	contactHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/contact"
	createBookingHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/create_booking"
	diagnosticsHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/diagnostics"
	getAvailableSlotsHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/get_available_slots"
	getBookingsHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/get_bookings"
	getServicesHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/get_services"
	syncBookingHandler "github.com/abarriera/CPA-BookingService/internal/api/handlers/sync_booking"
	"github.com/abarriera/CPA-BookingService/internal/api/middleware"
	"github.com/abarriera/CPA-BookingService/internal/config"
	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/flow"
	"github.com/abarriera/CPA-BookingService/internal/infra/storage/filesnapshot"
	snapshotRepo "github.com/abarriera/CPA-BookingService/internal/infra/storage/snapshot"
	"github.com/abarriera/CPA-BookingService/internal/integrations/googlecalendar"
	"github.com/abarriera/CPA-BookingService/internal/integrations/openrouter"
	"github.com/abarriera/CPA-BookingService/internal/integrations/resend"
	"github.com/abarriera/CPA-BookingService/internal/store"
	getAvailableSlotsUC "github.com/abarriera/CPA-BookingService/internal/usecase/get_available_slots"
	submitBookingUC "github.com/abarriera/CPA-BookingService/internal/usecase/submit_booking"
	"github.com/abarriera/CPA-BookingService/pkg/logger"
	"github.com/abarriera/CPA-BookingService/pkg/metrics"
)

func main() {
	// Переменные окружения из .env, если файл есть
	_ = godotenv.Load()

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

	log.Info("Starting CPA-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Хранилище снапшотов: PostgreSQL или файлы
	var persistence store.Persistence
	if cfg.Database.Enabled {
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

		persistence = snapshotRepo.NewRepository(db)
	} else {
		fileStore, err := filesnapshot.New(cfg.Storage.Dir)
		if err != nil {
			log.Fatal("Failed to initialize file snapshot storage: %v", err)
		}
		log.Info("Using file snapshot storage at %s", cfg.Storage.Dir)
		persistence = fileStore
	}

	// Загружаем локальный список записей
	bookingStore := store.New(ctx, persistence, cfg.Storage.SnapshotKey, log)
	log.Info("Booking store loaded, %d bookings", bookingStore.Count())

	// Клиент Google Calendar, выключается при неполном окружении
	timezone := cfg.Calendar.Timezone
	if timezone == "" {
		timezone = domain.Timezone
	}

	var calendarClient *googlecalendar.Client
	credentials := os.Getenv("GOOGLE_CREDENTIALS")
	calendarID := os.Getenv("GOOGLE_CALENDAR_ID")
	switch {
	case credentials == "":
		calendarClient = googlecalendar.NewDisabledClient("GOOGLE_CREDENTIALS is not set", log)
	case calendarID == "":
		calendarClient = googlecalendar.NewDisabledClient("GOOGLE_CALENDAR_ID is not set", log)
	default:
		calendarClient, err = googlecalendar.NewClient(
			ctx,
			[]byte(credentials),
			calendarID,
			timezone,
			time.Duration(cfg.Calendar.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize calendar client: %v", err)
		}
		log.Info("Calendar client initialized (calendar_id=%s, timezone=%s)", calendarID, timezone)
	}

	// Клиент Resend для контактной формы
	resendClient := resend.NewClient(
		os.Getenv("RESEND_API_KEY"),
		cfg.Contact.FromEmail,
		cfg.Contact.RecipientEmail,
		time.Duration(cfg.Contact.Timeout)*time.Second,
		log,
	)

	// Клиент OpenRouter для AI ассистента
	chatClient := openrouter.NewClient(
		os.Getenv("OPENROUTER_API_KEY"),
		openrouter.Options{
			Model:       cfg.Chat.Model,
			MaxTokens:   cfg.Chat.MaxTokens,
			Temperature: cfg.Chat.Temperature,
			TopP:        cfg.Chat.TopP,
			Referer:     cfg.Chat.Referer,
			Title:       cfg.Chat.Title,
		},
		time.Duration(cfg.Chat.Timeout)*time.Second,
		log,
	)

	timeProvider := submitBookingUC.RealTimeProvider{}

	// Инициализируем use cases
	var syncObserver submitBookingUC.SyncObserver
	if cfg.Metrics.Enabled {
		syncObserver = metricsCollector
	}
	submitBookingUseCase := submitBookingUC.NewUsecase(bookingStore, calendarClient, timeProvider, syncObserver, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUsecase(bookingStore, timeProvider, log)

	// Менеджер сессий записи
	sessionManager := flow.NewManager(bookingStore, submitBookingUseCase, timeProvider, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingStore, log)
	getServices := getServicesHandler.NewHandler(log)
	syncBooking := syncBookingHandler.NewHandler(calendarClient, log)
	contact := contactHandler.NewHandler(resendClient, timeProvider, log)
	aiChat := aiChatHandler.NewHandler(chatClient, log)
	diagnostics := diagnosticsHandler.NewHandler(log)
	bookingFlow := bookingFlowHandler.NewHandler(sessionManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Ограничение частоты запросов к чату (если включено): только этот
	// endpoint ходит в платный upstream
	aiChatHandler := http.Handler(http.HandlerFunc(aiChat.Handle))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		aiChatHandler = limiter.Limit(aiChatHandler)
		log.Info("Rate limiting enabled for /ai-chat (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи на прием ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Прямая синхронизация записи с календарем
	api.HandleFunc("/booking", syncBooking.Handle).Methods(http.MethodPost)

	// --- Пошаговая сессия записи ---
	api.HandleFunc("/flow", bookingFlow.HandleStart).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}", bookingFlow.HandleState).Methods(http.MethodGet)
	api.HandleFunc("/flow/{sessionId}", bookingFlow.HandleEnd).Methods(http.MethodDelete)
	api.HandleFunc("/flow/{sessionId}/date", bookingFlow.HandleSelectDate).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/time", bookingFlow.HandleSelectTime).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/back", bookingFlow.HandleBack).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/submit", bookingFlow.HandleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/cancel", bookingFlow.HandleCancel).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/close", bookingFlow.HandleClose).Methods(http.MethodPost)

	// --- Сопутствующие сервисы сайта ---
	api.HandleFunc("/contact", contact.Handle).Methods(http.MethodPost)
	api.Handle("/ai-chat", aiChatHandler).Methods(http.MethodPost)
	api.HandleFunc("/diagnostics", diagnostics.Handle).Methods(http.MethodGet)

	// CORS для браузерного виджета
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
