package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

type quizStore interface {
	GetByID(ctx context.Context, quizID uuid.UUID) (quiz.Quiz, error)
}

type questionStore interface {
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]quiz.Question, error)
}

type resultStore interface {
	Create(ctx context.Context, res *quiz.QuizResult) error
}

// StatsInvalidator drops cached aggregates for a quiz after a new result
// lands (implemented by the Redis stats cache).
type StatsInvalidator interface {
	Invalidate(ctx context.Context, quizID uuid.UUID) error
}

// Submission carries one quiz attempt from the caller. SessionID is an opaque
// caller-generated token standing in for user identity; TimeSpentSeconds is
// stored verbatim without plausibility checks.
type Submission struct {
	SessionID        string
	UserProfile      string
	QuizID           uuid.UUID
	Answers          []quiz.SubmittedAnswer
	TimeSpentSeconds int
}

// Service runs the load-grade-persist sequence for quiz submissions.
type Service struct {
	quizzes     quizStore
	questions   questionStore
	results     resultStore
	engine      *Engine
	invalidator StatsInvalidator
	logger      zerolog.Logger
	now         func() time.Time
}

// NewService constructs the scoring service. invalidator may be nil when no
// stats cache is configured.
func NewService(quizzes quizStore, questions questionStore, results resultStore, invalidator StatsInvalidator, logger zerolog.Logger) *Service {
	return &Service{
		quizzes:     quizzes,
		questions:   questions,
		results:     results,
		engine:      NewEngine(),
		invalidator: invalidator,
		logger:      logger.With().Str("component", "scoring").Logger(),
		now:         time.Now,
	}
}

// Submit grades a submission and persists the result. The caller never sees
// a graded-but-unpersisted result: a persistence failure fails the call.
// Repeated submissions for the same session and quiz each produce an
// independent result (retake semantics, no dedup).
func (s *Service) Submit(ctx context.Context, sub Submission) (quiz.QuizResult, error) {
	start := s.now()

	if _, err := s.quizzes.GetByID(ctx, sub.QuizID); err != nil {
		submissionErrors.Inc()
		return quiz.QuizResult{}, fmt.Errorf("load quiz %s: %w", sub.QuizID, err)
	}

	// An existing quiz with zero questions is not an error; it grades to
	// totalPoints=0, percentage=0.
	questions, err := s.questions.ListByQuiz(ctx, sub.QuizID)
	if err != nil {
		submissionErrors.Inc()
		return quiz.QuizResult{}, fmt.Errorf("load questions for quiz %s: %w", sub.QuizID, err)
	}

	outcome := s.engine.Grade(questions, sub.Answers)

	result := quiz.QuizResult{
		ID:               uuid.New(),
		SessionID:        sub.SessionID,
		UserProfile:      sub.UserProfile,
		QuizID:           sub.QuizID,
		Score:            outcome.Score,
		TotalPoints:      outcome.TotalPoints,
		Percentage:       outcome.Percentage,
		Answers:          outcome.Answers,
		CompletedAt:      s.now().UTC(),
		TimeSpentSeconds: sub.TimeSpentSeconds,
	}

	if err := s.results.Create(ctx, &result); err != nil {
		submissionErrors.Inc()
		return quiz.QuizResult{}, fmt.Errorf("persist result: %w", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, sub.QuizID); err != nil {
			s.logger.Warn().Err(err).Stringer("quiz_id", sub.QuizID).Msg("stats cache invalidation failed")
		}
	}

	submissionsTotal.WithLabelValues(sub.UserProfile).Inc()
	gradeDuration.Observe(time.Since(start).Seconds())

	s.logger.Info().
		Stringer("quiz_id", sub.QuizID).
		Str("session_id", sub.SessionID).
		Int("score", result.Score).
		Int("total_points", result.TotalPoints).
		Int("percentage", result.Percentage).
		Msg("submission scored")

	return result, nil
}
