// cmd/layoutd/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"layout-engine/internal/adapter"
	"layout-engine/internal/api"
	"layout-engine/internal/common/config"
	"layout-engine/internal/common/database"
	"layout-engine/internal/common/logger"
	"layout-engine/internal/common/observability"
	"layout-engine/internal/composer"
	"layout-engine/internal/corpus"
	"layout-engine/internal/engine"
	"layout-engine/internal/intent"
	"layout-engine/internal/scorer"
	"layout-engine/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting layout engine...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Stores: Redis when enabled, in-memory otherwise ---
	var stores *store.Stores
	if cfg.Redis.Enabled {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")

		stores = store.NewRedisStores(redisClient.GetClient())
	} else {
		zapLog.Info("Redis disabled, using in-memory stores")
		stores = store.NewMemoryStores()
	}

	// --- Intent extraction: remote strategy only with a credential ---
	intentOpts := []intent.Option{}
	if cfg.Extractor.RemoteEnabled() {
		remote := intent.NewRemoteStrategy(cfg.Extractor, log)
		intentOpts = append(intentOpts, intent.WithPrimary(remote, cfg.Extractor.TimeoutDuration()))
		zapLog.Info("Remote intent extraction enabled",
			zap.String("baseUrl", cfg.Extractor.BaseURL),
			zap.String("model", cfg.Extractor.Model),
		)
	} else {
		zapLog.Info("No extractor credential configured, running in fallback-only mode")
	}
	extractor := intent.NewService(stores.History, log, intentOpts...)

	// --- Pipeline ---
	templateCorpus := corpus.Default()
	eng := engine.New(
		templateCorpus,
		extractor,
		scorer.New(cfg.Pipeline.SimilarityThreshold),
		adapter.New(stores.History, log),
		composer.New(templateCorpus, stores.Feedback, log),
		stores,
		obs,
		log,
		engine.WithVersion(cfg.App.Version),
	)

	zapLog.Info("Pipeline initialized", zap.Int("templates", templateCorpus.Len()))

	// --- HTTP server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      api.NewRouter(eng, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Layout engine stopped")
}
