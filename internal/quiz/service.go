package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type quizStore interface {
	ListActiveByCategory(ctx context.Context, category string) ([]Quiz, error)
	GetByID(ctx context.Context, quizID uuid.UUID) (Quiz, error)
}

type questionStore interface {
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]Question, error)
}

// Service exposes catalog reads consumed by the quiz-taking caller.
type Service struct {
	quizzes   quizStore
	questions questionStore
	logger    zerolog.Logger
}

// NewService constructs the catalog service.
func NewService(quizzes quizStore, questions questionStore, logger zerolog.Logger) *Service {
	return &Service{
		quizzes:   quizzes,
		questions: questions,
		logger:    logger.With().Str("component", "quiz_catalog").Logger(),
	}
}

// ListByCategory returns the active quizzes for one profile's category.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]Quiz, error) {
	quizzes, err := s.quizzes.ListActiveByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list quizzes for category %q: %w", category, err)
	}
	return quizzes, nil
}

// Get returns one quiz by ID, active or not.
func (s *Service) Get(ctx context.Context, quizID uuid.UUID) (Quiz, error) {
	return s.quizzes.GetByID(ctx, quizID)
}

// Questions returns a quiz's full question set. The quiz must exist; an
// existing quiz with no questions returns an empty set.
func (s *Service) Questions(ctx context.Context, quizID uuid.UUID) ([]Question, error) {
	if _, err := s.quizzes.GetByID(ctx, quizID); err != nil {
		return nil, err
	}
	return s.questions.ListByQuiz(ctx, quizID)
}
