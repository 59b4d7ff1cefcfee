// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
	"github.com/your-org/storefront-backend/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)
	logger.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Infof("Starting %s", cfg.App.Name)

	// Connect to the document store
	st, closeStore, err := newStore(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to store: %v", err)
	}
	defer closeStore()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		logger.Fatalf("Redis health check failed: %v", err)
	}

	logger.Info("All systems operational")

	// Create and start HTTP server
	server := http.NewServer(cfg, st, redisClient, logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logger.Info("Server shutdown completed")
}

// newLogger configures the process-wide logger from config
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// newStore opens the configured store backend and returns it with a cleanup
// function
func newStore(cfg *config.Config, logger *logrus.Logger) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case "mongo":
		m, err := store.NewMongo(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.Close(ctx); err != nil {
				logger.Errorf("Failed to close store connection: %v", err)
			}
		}
		return m, closeFn, nil

	case "memory":
		mem := store.NewMemory()
		if cfg.IsDevelopment() {
			if err := seedCatalog(mem); err != nil {
				logger.Warnf("Catalog seeding failed: %v", err)
			}
		}
		return mem, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// seedCatalog loads a small demo catalog so the memory backend is browsable
// out of the box
func seedCatalog(st store.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	demo := []product.Product{
		{ProductName: "Walnut Writing Desk", Price: 24900, Quantity: 12, ImageURL: "/images/walnut-desk.jpg", Description: "Solid walnut desk with two drawers"},
		{ProductName: "Oak Bookshelf", Price: 15900, Quantity: 8, ImageURL: "/images/oak-bookshelf.jpg", Description: "Five-shelf oak bookcase"},
		{ProductName: "Linen Armchair", Price: 32900, Quantity: 5, ImageURL: "/images/linen-armchair.jpg", Description: "Upholstered armchair in natural linen"},
	}

	for _, p := range demo {
		if _, err := st.Insert(ctx, store.Products, &p); err != nil {
			return err
		}
	}
	return nil
}
