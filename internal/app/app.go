package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/heshanf/agridataset-backend/internal/adapter/llm"
	"github.com/heshanf/agridataset-backend/internal/adapter/postgres"
	datasetrepo "github.com/heshanf/agridataset-backend/internal/adapter/postgres/dataset"
	"github.com/heshanf/agridataset-backend/internal/config"
	"github.com/heshanf/agridataset-backend/internal/generation"
	datasetservice "github.com/heshanf/agridataset-backend/internal/service/dataset"
	"github.com/heshanf/agridataset-backend/internal/transport/middleware"
	"github.com/heshanf/agridataset-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires services and handlers, and
// serves HTTP until the context is canceled or a shutdown signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repo := datasetrepo.New(pool)
	llmClient := llm.New(cfg.OpenAI)

	generationSvc := generation.NewService(logger, repo, llmClient, cfg.Generation)
	datasetSvc := datasetservice.NewService(logger, repo)

	mux := rest.NewRouter(rest.Handlers{
		Generate: rest.NewGenerateHandler(generationSvc, logger),
		Dataset:  rest.NewDatasetHandler(datasetSvc, logger),
		Health:   rest.NewHealthHandler(pool, datasetSvc, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
