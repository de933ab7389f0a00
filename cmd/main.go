package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thiagolinoz/fastfood-orders/internal/catalog"
	"github.com/thiagolinoz/fastfood-orders/internal/config"
	"github.com/thiagolinoz/fastfood-orders/internal/customer"
	"github.com/thiagolinoz/fastfood-orders/internal/events"
	h "github.com/thiagolinoz/fastfood-orders/internal/http"
	"github.com/thiagolinoz/fastfood-orders/internal/repository"
	"github.com/thiagolinoz/fastfood-orders/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	creds := &repository.Credentials{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		DBName:            cfg.DBName,
		MigrationsDirPath: cfg.MigrationsPath,
	}

	repo, err := repository.NewRepository(creds)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.RunMigrations(creds); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database migrations completed")

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL: cfg.CatalogServiceURL,
		Timeout: cfg.RequestTimeout,
	})
	customerClient := customer.NewClient(customer.Config{
		BaseURL:        cfg.CustomerServiceURL,
		Timeout:        cfg.RequestTimeout,
		AllowAnonymous: cfg.AllowAnonymous,
	})

	var publisher service.EventPublisher = events.NopPublisher{}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		producer := events.NewProducer(brokers...)
		defer producer.Close()
		publisher = producer
		logger.Info("kafka producer configured", zap.Strings("brokers", brokers))
	} else {
		logger.Info("no kafka brokers configured, event publishing disabled")
	}

	orderService := service.NewOrderService(repo, repo, catalogClient, customerClient, publisher, logger)

	orderHandler := h.NewOrderHandler(orderService, cfg.RequestTimeout)
	webhookHandler := h.NewWebhookHandler(orderService, cfg.RequestTimeout)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/checkout", orderHandler.Checkout)
			r.Get("/", orderHandler.ListQueue)
			r.Get("/status/{status}", orderHandler.ListByStatus)
			r.Get("/{orderNumber}", orderHandler.GetByNumber)
			r.Get("/{orderNumber}/payment-status", webhookHandler.PaymentStatus)
			r.Patch("/{orderId}/status", orderHandler.UpdateStatus)
		})
		r.Post("/webhooks/payment", webhookHandler.ReceivePayment)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("orders service starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
