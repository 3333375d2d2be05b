package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/storefront/pkg/cache"
	"github.com/example/storefront/pkg/catalog"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/discovery"
	"github.com/example/storefront/pkg/notify"
	"github.com/example/storefront/pkg/store"
	"github.com/example/storefront/web"
	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host))

	ctx := context.Background()

	// Connect to the document store
	st, err := store.NewMongoStore(&cfg.MongoDB, &cfg.Media)
	if err != nil {
		logger.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer st.Close(ctx)

	if err := st.Ping(ctx); err != nil {
		logger.Fatal("Document store unreachable", zap.Error(err))
	}

	// Redis cache is optional; a dead cache only slows us down
	var cacheClient *cache.Client
	c := cache.New(&cfg.Redis)
	if err := c.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed, serving without cache", zap.Error(err))
		c.Close()
	} else {
		logger.Info("Redis connected successfully")
		cacheClient = c
		defer c.Close()
	}

	// Register in etcd; the storefront runs fine without discovery
	reg, err := discovery.NewRegistry(&cfg.Etcd)
	if err != nil {
		logger.Warn("Failed to connect to etcd, continuing without service discovery", zap.Error(err))
		reg = nil
	}
	if reg != nil {
		err = reg.Register(ctx, &discovery.Instance{
			Name: cfg.Server.Name,
			Host: cfg.Server.Host,
			Port: cfg.Server.Port,
		})
		if err != nil {
			logger.Warn("Failed to register instance", zap.Error(err))
		}
	}

	// Build services and server
	cat := catalog.New(st, cacheClient, logger)
	not := notify.NewService(st, logger)

	srv := web.NewServer(cfg, logger, cat, not, st)
	srv.SetupRoutes()

	// Start server in goroutine
	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			srvErr <- err
		}
	}()

	logger.Info("Storefront started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-srvErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	if reg != nil {
		reg.Close()
	}

	logger.Info("Storefront stopped")
}
