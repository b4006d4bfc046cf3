package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edunumeric/quiz-ia-platform/internal/config"
	"github.com/edunumeric/quiz-ia-platform/internal/db/repository"
	"github.com/edunumeric/quiz-ia-platform/internal/logging"
	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
	"github.com/edunumeric/quiz-ia-platform/internal/scoring"
	"github.com/edunumeric/quiz-ia-platform/internal/server"
	"github.com/edunumeric/quiz-ia-platform/internal/stats"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	quizRepo := repository.NewQuizRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	resultRepo := repository.NewResultRepository(pool)

	statsCache := stats.NewCache(redisClient, cfg.Stats.CacheTTL)

	catalogSvc := quiz.NewService(quizRepo, questionRepo, logger)
	scoringSvc := scoring.NewService(quizRepo, questionRepo, resultRepo, statsCache, logger)
	statsSvc := stats.NewService(resultRepo, statsCache, logger)

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, server.Handlers{
		Quiz:    quiz.NewHTTPHandler(catalogSvc, logger),
		Scoring: scoring.NewHTTPHandler(scoringSvc, logger),
		Stats:   stats.NewHTTPHandler(statsSvc, logger),
	})

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
