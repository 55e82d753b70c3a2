package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/adhd-selfcheck/backend/internal/api"
	"github.com/adhd-selfcheck/backend/internal/infrastructure/config"
	"github.com/adhd-selfcheck/backend/internal/retention"
	"github.com/adhd-selfcheck/backend/internal/service"
	"github.com/adhd-selfcheck/backend/internal/store"

	_ "github.com/adhd-selfcheck/backend/docs" // generated swagger docs
)

// @title           ADHD Self-Check API
// @version         1.0
// @description     Adult ADHD self-screening: 18-question catalog, scoring, risk interpretation and stored assessments.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is done and returns only after the server has
// drained, so deferred closes never race in-flight handlers.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.Open(ctx, store.Config{
		Driver:        cfg.StoreDriver,
		SQLitePath:    cfg.SQLitePath,
		PostgresDSN:   cfg.PostgresDSN,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer db.Close()

	assessments := service.NewAssessmentService(db, logger)
	handler := api.NewHandler(assessments, logger)

	if cfg.RetentionDays > 0 {
		sweeper := retention.NewSweeper(assessments, cfg.RetentionDays, logger)
		if err := sweeper.Start(cfg.RetentionSchedule); err != nil {
			return fmt.Errorf("start retention sweeper: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			sweeper.Stop(stopCtx)
		}()
	}

	limiter := api.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies...)
	go limiter.Run(ctx, time.Minute)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: RequestID → Logging → CORS → RateLimit → mux ──
	chain := api.RequestID(api.Logging(logger)(api.CORS(cfg.CORSOrigin)(limiter.Middleware(mux))))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "store", cfg.StoreDriver)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	<-drained
	logger.Info("server stopped")
	return nil
}
