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

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/storefront/config"
	"github.com/kendall-kelly/storefront/routes"
	"github.com/kendall-kelly/storefront/services"
	"github.com/kendall-kelly/storefront/store"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting storefront server...",
		zap.String("env", cfg.GoEnv),
		zap.String("config_file", cfg.EnvFile),
		zap.String("store_driver", cfg.StoreDriver),
	)
	for _, warning := range cfg.Warnings() {
		logger.Warn(warning, zap.String("env", cfg.GoEnv))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := newBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store backend", zap.Error(err))
	}

	st := store.New(backend)
	stats := st.Stats()
	logger.Info("Store loaded",
		zap.String("backend", stats.Backend),
		zap.Int("products", stats.Products),
		zap.Int("orders", stats.Orders),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.Setup(cfg, st, logger)
	if err != nil {
		logger.Fatal("Failed to set up router", zap.Error(err))
	}

	srv := newServer(cfg, router)
	go func() {
		logger.Info("Server is running", zap.String("url", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// newBackend opens the persistence backend selected by STORE_DRIVER
func newBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres, config.DriverSQLite:
		if cfg.MirrorEnabled() {
			logger.Warn("AWS_S3_BUCKET is only used by the file store driver",
				zap.String("store_driver", cfg.StoreDriver))
		}
		if err := config.ConnectDatabase(cfg); err != nil {
			return nil, err
		}
		backend, err := store.NewDatabaseBackend(config.GetDB(), logger)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		var uploader store.SnapshotUploader
		if cfg.MirrorEnabled() {
			s3Service, err := services.NewS3Service(ctx, cfg)
			if err != nil {
				return nil, err
			}
			uploader = s3Service
			logger.Info("Mirroring data files to S3",
				zap.String("bucket", cfg.AWSS3Bucket),
				zap.String("prefix", cfg.SnapshotPrefix),
			)
		}
		return store.NewFileBackend(cfg.DataDir, uploader, logger), nil
	}
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
