package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edunumeric/quiz-ia-platform/internal/config"
	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
	"github.com/edunumeric/quiz-ia-platform/internal/scoring"
	"github.com/edunumeric/quiz-ia-platform/internal/stats"
)

// Handlers groups the per-domain HTTP handlers wired into the API mux.
type Handlers struct {
	Quiz    *quiz.HTTPHandler
	Scoring *scoring.HTTPHandler
	Stats   *stats.HTTPHandler
}

// NewHTTPServer wires base routes (health, metrics) plus the quiz API.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if h.Quiz != nil {
		mux.HandleFunc("GET /v1/quizzes", h.Quiz.HandleList)
		mux.HandleFunc("GET /v1/quizzes/{id}", h.Quiz.HandleGet)
		mux.HandleFunc("GET /v1/quizzes/{id}/questions", h.Quiz.HandleQuestions)
	}
	if h.Stats != nil {
		mux.HandleFunc("GET /v1/quizzes/{id}/stats", h.Stats.HandleQuizStats)
		mux.HandleFunc("GET /v1/sessions/{session_id}/results", h.Stats.HandleSessionResults)
	}
	if h.Scoring != nil {
		mux.HandleFunc("POST /v1/results", h.Scoring.HandleSubmit)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsMiddleware(cfg.CORS, mux),
	}
}

// corsMiddleware applies the configured CORS policy for the browser client.
func corsMiddleware(cfg config.CORS, next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			if cfg.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}
