package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

type resultStore interface {
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]quiz.QuizResult, error)
	ListBySession(ctx context.Context, sessionID string) ([]quiz.SessionResult, error)
}

// StatsCache defines cache behavior (implemented by the Redis-backed Cache).
type StatsCache interface {
	Get(ctx context.Context, quizID uuid.UUID) (*quiz.QuizStats, error)
	Set(ctx context.Context, quizID uuid.UUID, stats quiz.QuizStats) error
}

// Service computes summary statistics and history over stored results.
type Service struct {
	results resultStore
	cache   StatsCache
	logger  zerolog.Logger
}

// NewService constructs the aggregation service. cache may be nil.
func NewService(results resultStore, cache StatsCache, logger zerolog.Logger) *Service {
	return &Service{
		results: results,
		cache:   cache,
		logger:  logger.With().Str("component", "stats").Logger(),
	}
}

// ForQuiz aggregates every attempt recorded for a quiz. A quiz with no
// attempts yields all-zero statistics, not an error.
//
// Each average is rounded independently. Averaging stored percentages is not
// the same as recomputing a percentage from averaged score and total; that
// approximation is intentional and matches what the history screens show.
func (s *Service) ForQuiz(ctx context.Context, quizID uuid.UUID) (quiz.QuizStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, quizID); err == nil && cached != nil {
			return *cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Stringer("quiz_id", quizID).Msg("stats cache read failed")
		}
	}

	results, err := s.results.ListByQuiz(ctx, quizID)
	if err != nil {
		return quiz.QuizStats{}, fmt.Errorf("load results for quiz %s: %w", quizID, err)
	}
	if len(results) == 0 {
		return quiz.QuizStats{}, nil
	}

	var score, pct, seconds int
	for _, r := range results {
		score += r.Score
		pct += r.Percentage
		seconds += r.TimeSpentSeconds
	}

	stats := quiz.QuizStats{
		TotalAttempts:     len(results),
		AverageScore:      roundDiv(score, len(results)),
		AveragePercentage: roundDiv(pct, len(results)),
		AverageTime:       roundDiv(seconds, len(results)),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, quizID, stats); err != nil {
			s.logger.Warn().Err(err).Stringer("quiz_id", quizID).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

// ForSession returns a session's attempt history, most recent first, each
// entry carrying its quiz's display title and category. Results whose quiz
// row no longer exists keep the defined fallback labels from the store layer.
func (s *Service) ForSession(ctx context.Context, sessionID string) ([]quiz.SessionResult, error) {
	results, err := s.results.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load results for session: %w", err)
	}
	return results, nil
}

func roundDiv(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
