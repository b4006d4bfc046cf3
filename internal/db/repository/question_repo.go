package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

// QuestionRepository wraps question access. Questions are read-only from the
// scoring path's perspective.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository constructs a new question repository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListByQuiz retrieves all questions belonging to a quiz in insertion order.
func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]quiz.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT question_id, quiz_id, prompt, options, correct_answer, explanation, points
		 FROM questions WHERE quiz_id = $1
		 ORDER BY created_at`, quizID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []quiz.Question
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Prompt, &q.Options, &q.CorrectAnswer, &q.Explanation, &q.Points); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Create inserts a question row. Seeder/admin use only.
func (r *QuestionRepository) Create(ctx context.Context, q *quiz.Question) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO questions (question_id, quiz_id, prompt, options, correct_answer, explanation, points)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		q.ID, q.QuizID, q.Prompt, q.Options, q.CorrectAnswer, q.Explanation, q.Points)
	return err
}
