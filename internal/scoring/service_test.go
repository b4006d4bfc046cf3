package scoring

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

type stubQuizStore struct {
	get func(ctx context.Context, quizID uuid.UUID) (quiz.Quiz, error)
}

func (s *stubQuizStore) GetByID(ctx context.Context, quizID uuid.UUID) (quiz.Quiz, error) {
	return s.get(ctx, quizID)
}

type stubQuestionStore struct {
	list func(ctx context.Context, quizID uuid.UUID) ([]quiz.Question, error)
}

func (s *stubQuestionStore) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]quiz.Question, error) {
	return s.list(ctx, quizID)
}

type stubResultStore struct {
	created []quiz.QuizResult
	err     error
}

func (s *stubResultStore) Create(_ context.Context, res *quiz.QuizResult) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, *res)
	return nil
}

type stubInvalidator struct {
	calls []uuid.UUID
}

func (s *stubInvalidator) Invalidate(_ context.Context, quizID uuid.UUID) error {
	s.calls = append(s.calls, quizID)
	return nil
}

func existingQuiz(quizID uuid.UUID) *stubQuizStore {
	return &stubQuizStore{get: func(_ context.Context, id uuid.UUID) (quiz.Quiz, error) {
		if id != quizID {
			return quiz.Quiz{}, quiz.ErrNotFound
		}
		return quiz.Quiz{ID: quizID, Title: "IA et Inspection Pédagogique", IsActive: true}, nil
	}}
}

func TestSubmitPersistsGradedResult(t *testing.T) {
	quizID := uuid.New()
	q1, q2 := uuid.New(), uuid.New()
	questions := &stubQuestionStore{list: func(_ context.Context, _ uuid.UUID) ([]quiz.Question, error) {
		return []quiz.Question{
			question(q1, 1, 10),
			question(q2, 0, 15),
		}, nil
	}}
	results := &stubResultStore{}
	invalidator := &stubInvalidator{}

	svc := NewService(existingQuiz(quizID), questions, results, invalidator, zerolog.New(io.Discard))
	fixed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got, err := svc.Submit(context.Background(), Submission{
		SessionID:   "session-abc",
		UserProfile: quiz.CategoryInspector,
		QuizID:      quizID,
		Answers: []quiz.SubmittedAnswer{
			{QuestionID: q1, SelectedAnswer: 1},
			{QuestionID: q2, SelectedAnswer: 2},
		},
		TimeSpentSeconds: 73,
	})
	require.NoError(t, err)

	require.Len(t, results.created, 1)
	persisted := results.created[0]
	assert.Equal(t, got, persisted, "caller sees exactly what was persisted")

	assert.NotEqual(t, uuid.Nil, persisted.ID)
	assert.Equal(t, "session-abc", persisted.SessionID)
	assert.Equal(t, quiz.CategoryInspector, persisted.UserProfile)
	assert.Equal(t, 10, persisted.Score)
	assert.Equal(t, 25, persisted.TotalPoints)
	assert.Equal(t, 40, persisted.Percentage)
	assert.Equal(t, fixed, persisted.CompletedAt)
	assert.Equal(t, 73, persisted.TimeSpentSeconds)
	assert.Len(t, persisted.Answers, 2)

	assert.Equal(t, []uuid.UUID{quizID}, invalidator.calls)
}

func TestSubmitUnknownQuizFails(t *testing.T) {
	results := &stubResultStore{}
	svc := NewService(
		&stubQuizStore{get: func(context.Context, uuid.UUID) (quiz.Quiz, error) {
			return quiz.Quiz{}, quiz.ErrNotFound
		}},
		&stubQuestionStore{list: func(context.Context, uuid.UUID) ([]quiz.Question, error) {
			t.Fatal("questions must not be loaded for a missing quiz")
			return nil, nil
		}},
		results, nil, zerolog.New(io.Discard))

	_, err := svc.Submit(context.Background(), Submission{QuizID: uuid.New(), SessionID: "s"})
	require.Error(t, err)
	assert.ErrorIs(t, err, quiz.ErrNotFound)
	assert.Empty(t, results.created)
}

func TestSubmitEmptyQuestionSetIsNotAnError(t *testing.T) {
	quizID := uuid.New()
	results := &stubResultStore{}
	svc := NewService(existingQuiz(quizID),
		&stubQuestionStore{list: func(context.Context, uuid.UUID) ([]quiz.Question, error) {
			return nil, nil
		}},
		results, nil, zerolog.New(io.Discard))

	got, err := svc.Submit(context.Background(), Submission{
		QuizID:    quizID,
		SessionID: "s",
		Answers:   []quiz.SubmittedAnswer{{QuestionID: uuid.New(), SelectedAnswer: 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 0, got.TotalPoints)
	assert.Equal(t, 0, got.Percentage)
	assert.Empty(t, got.Answers)
	assert.Len(t, results.created, 1)
}

func TestSubmitPersistFailurePropagates(t *testing.T) {
	quizID := uuid.New()
	svc := NewService(existingQuiz(quizID),
		&stubQuestionStore{list: func(context.Context, uuid.UUID) ([]quiz.Question, error) {
			return nil, nil
		}},
		&stubResultStore{err: errors.New("insert failed")},
		nil, zerolog.New(io.Discard))

	_, err := svc.Submit(context.Background(), Submission{QuizID: quizID, SessionID: "s"})
	assert.ErrorContains(t, err, "persist result")
}

func TestSubmitStoresTimeSpentVerbatim(t *testing.T) {
	quizID := uuid.New()
	results := &stubResultStore{}
	svc := NewService(existingQuiz(quizID),
		&stubQuestionStore{list: func(context.Context, uuid.UUID) ([]quiz.Question, error) {
			return nil, nil
		}},
		results, nil, zerolog.New(io.Discard))

	// Deliberately implausible values are accepted as-is.
	for _, seconds := range []int{-10, 0, 999999} {
		_, err := svc.Submit(context.Background(), Submission{
			QuizID:           quizID,
			SessionID:        "s",
			TimeSpentSeconds: seconds,
		})
		require.NoError(t, err)
		assert.Equal(t, seconds, results.created[len(results.created)-1].TimeSpentSeconds)
	}
}

func TestSubmitRetakesCreateIndependentResults(t *testing.T) {
	quizID := uuid.New()
	q1 := uuid.New()
	results := &stubResultStore{}
	svc := NewService(existingQuiz(quizID),
		&stubQuestionStore{list: func(context.Context, uuid.UUID) ([]quiz.Question, error) {
			return []quiz.Question{question(q1, 0, 10)}, nil
		}},
		results, nil, zerolog.New(io.Discard))

	sub := Submission{
		QuizID:    quizID,
		SessionID: "same-session",
		Answers:   []quiz.SubmittedAnswer{{QuestionID: q1, SelectedAnswer: 0}},
	}
	first, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, results.created, 2)
}
