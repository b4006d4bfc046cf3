package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

// QuizRepository contains DB helpers for the quiz catalog.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository constructs a new quiz repository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

const quizColumns = `quiz_id, title, description, category, difficulty, is_active, created_at`

// ListActiveByCategory returns active quizzes for one category.
func (r *QuizRepository) ListActiveByCategory(ctx context.Context, category string) ([]quiz.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+quizColumns+` FROM quizzes
		 WHERE category = $1 AND is_active = TRUE
		 ORDER BY created_at`, category)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []quiz.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// GetByID fetches a single quiz. Returns quiz.ErrNotFound when absent.
func (r *QuizRepository) GetByID(ctx context.Context, quizID uuid.UUID) (quiz.Quiz, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE quiz_id = $1`, quizID)
	q, err := scanQuiz(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return quiz.Quiz{}, quiz.ErrNotFound
	}
	return q, err
}

// Create inserts a quiz row. Used by the seeder and admin tooling only;
// the scoring path never mutates quizzes.
func (r *QuizRepository) Create(ctx context.Context, q *quiz.Quiz) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (quiz_id, title, description, category, difficulty, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		q.ID, q.Title, q.Description, q.Category, q.Difficulty, q.IsActive,
	).Scan(&q.CreatedAt)
}

// Deactivate flips is_active off, the logical delete for quizzes.
func (r *QuizRepository) Deactivate(ctx context.Context, quizID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes SET is_active = FALSE WHERE quiz_id = $1`, quizID)
	if err != nil {
		return fmt.Errorf("deactivate quiz: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quiz.ErrNotFound
	}
	return nil
}

// Count returns the total number of quiz rows, active or not.
func (r *QuizRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quizzes`).Scan(&n)
	return n, err
}

func scanQuiz(row pgx.Row) (quiz.Quiz, error) {
	var q quiz.Quiz
	err := row.Scan(&q.ID, &q.Title, &q.Description, &q.Category, &q.Difficulty, &q.IsActive, &q.CreatedAt)
	return q, err
}
