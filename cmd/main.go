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

	createBookingHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/delete_booking"
	getBookingsHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/get_bookings"
	getProductHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/get_product"
	getProductsHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/get_products"
	getUserHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/get_user"
	getUsersHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/get_users"
	loginUserHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/login_user"
	orderWebhookHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/order_webhook"
	registerUserHandler "github.com/bookline/shopify-booking-service/internal/api/handlers/register_user"
	"github.com/bookline/shopify-booking-service/internal/api/middleware"
	"github.com/bookline/shopify-booking-service/internal/config"
	bookingRepo "github.com/bookline/shopify-booking-service/internal/infra/storage/booking"
	userRepo "github.com/bookline/shopify-booking-service/internal/infra/storage/user"
	shopifyClient "github.com/bookline/shopify-booking-service/internal/integrations/shopify"
	bookingsService "github.com/bookline/shopify-booking-service/internal/service/bookings"
	usersService "github.com/bookline/shopify-booking-service/internal/service/users"
	createBookingUC "github.com/bookline/shopify-booking-service/internal/usecase/create_booking"
	orderWebhookUC "github.com/bookline/shopify-booking-service/internal/usecase/process_order_webhook"
	"github.com/bookline/shopify-booking-service/pkg/logger"
	"github.com/bookline/shopify-booking-service/pkg/metrics"
	"github.com/bookline/shopify-booking-service/pkg/token"
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

	log.Info("Starting Shopify-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиент Shopify
	shopify := shopifyClient.NewClient(
		cfg.Shopify.StoreURL,
		cfg.Shopify.StorefrontToken,
		cfg.Shopify.AdminToken,
		time.Duration(cfg.Shopify.Timeout)*time.Second,
		log,
	)
	log.Info("Shopify client initialized (store=%s timeout=%ds)",
		cfg.Shopify.StoreURL, cfg.Shopify.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)

	// Менеджер токенов для аутентификации
	tokenManager := token.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	userSvc := usersService.NewService(userRepository, tokenManager, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)
	orderWebhookUseCase := orderWebhookUC.NewUseCase(shopify, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	orderWebhook := orderWebhookHandler.NewHandler(orderWebhookUseCase, log)
	getProducts := getProductsHandler.NewHandler(shopify, log)
	getProduct := getProductHandler.NewHandler(shopify, log)
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)
	getUsers := getUsersHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список бронирований с фильтрами
	r.HandleFunc("/booking", getBookings.Handle).Methods(http.MethodGet)

	// Регистрация и выпуск токена
	r.HandleFunc("/user/register", registerUser.Handle).Methods(http.MethodPost)
	r.HandleFunc("/user/login", loginUser.Handle).Methods(http.MethodPost)

	// ============================================================
	// WEBHOOK ROUTES (подпись HMAC вместо токена)
	// ============================================================

	webhooks := r.PathPrefix("/webhook").Subrouter()
	webhooks.Use(middleware.ShopifyWebhook(cfg.Shopify.WebhookSecret, log))
	webhooks.HandleFunc("/order-created", orderWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager))

	// --- Бронирования ---
	protected.HandleFunc("/booking", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Товары Shopify ---
	protected.HandleFunc("/product", getProducts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/product/{productId}", getProduct.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	protected.HandleFunc("/user", getUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/user/{userId}", getUser.Handle).Methods(http.MethodGet)

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
