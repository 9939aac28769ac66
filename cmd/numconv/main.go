package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/numconv/internal/config"
	"github.com/kailas-cloud/numconv/internal/domain/geo"
	logpkg "github.com/kailas-cloud/numconv/internal/logger"
	"github.com/kailas-cloud/numconv/internal/metrics"
	chiTransport "github.com/kailas-cloud/numconv/internal/transport/chi"
	convertuc "github.com/kailas-cloud/numconv/internal/usecase/convert"
	healthuc "github.com/kailas-cloud/numconv/internal/usecase/health"
	"github.com/kailas-cloud/numconv/internal/version"
)

func main() {
	// .env is optional; real environment variables win over it.
	dotenv := os.Getenv("NUMCONV_DOTENV")
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic("failed to load " + dotenv + ": " + err.Error())
	}

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting numconv API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("max_bit_width", cfg.Codec.MaxBitWidth),
		zap.String("zone_policy", cfg.Geodetic.ZonePolicy),
		zap.Bool("auth_enabled", len(cfg.Auth.APIKeys) > 0),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterConversionMetrics()
	metrics.RegisterHTTPMetrics()

	convertSvc := convertuc.New(metrics.ConversionRecorder{}).
		WithMaxBitWidth(cfg.Codec.MaxBitWidth).
		WithZonePolicy(geo.ZonePolicy(cfg.Geodetic.ZonePolicy))

	healthSvc := healthuc.New(map[string]healthuc.Checker{
		"twos_complement": convertuc.CodecProbe{},
		"geodetic":        convertuc.GeodeticProbe{},
	})

	server := chiTransport.NewServer(convertSvc, healthSvc, logger)

	r := newRouter(server, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
