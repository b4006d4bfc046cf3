package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

// ResultRepository persists quiz results. Results are immutable once written;
// there is no update or delete path.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository constructs a new result repository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

const resultColumns = `result_id, session_id, user_profile, quiz_id, score, total_points, percentage, answers, completed_at, time_spent_seconds`

// Create inserts a result row with its scored answers embedded as JSONB.
func (r *ResultRepository) Create(ctx context.Context, res *quiz.QuizResult) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quiz_results (`+resultColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		res.ID, res.SessionID, res.UserProfile, res.QuizID,
		res.Score, res.TotalPoints, res.Percentage, res.Answers,
		res.CompletedAt, res.TimeSpentSeconds)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// ListByQuiz returns every result recorded for a quiz.
func (r *ResultRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]quiz.QuizResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resultColumns+` FROM quiz_results WHERE quiz_id = $1`, quizID)
	if err != nil {
		return nil, fmt.Errorf("list results by quiz: %w", err)
	}
	defer rows.Close()

	var results []quiz.QuizResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// ListBySession returns a session's results, most recent attempt first, each
// joined with its quiz's display data. Results whose quiz row is gone come
// back with empty title/category and valid=false on the join.
func (r *ResultRepository) ListBySession(ctx context.Context, sessionID string) ([]quiz.SessionResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.result_id, r.session_id, r.user_profile, r.quiz_id,
		        r.score, r.total_points, r.percentage, r.answers,
		        r.completed_at, r.time_spent_seconds,
		        q.title, q.category
		 FROM quiz_results r
		 LEFT JOIN quizzes q ON q.quiz_id = r.quiz_id
		 WHERE r.session_id = $1
		 ORDER BY r.completed_at DESC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list results by session: %w", err)
	}
	defer rows.Close()

	var results []quiz.SessionResult
	for rows.Next() {
		var (
			res             quiz.SessionResult
			title, category *string
		)
		if err := rows.Scan(
			&res.ID, &res.SessionID, &res.UserProfile, &res.QuizID,
			&res.Score, &res.TotalPoints, &res.Percentage, &res.Answers,
			&res.CompletedAt, &res.TimeSpentSeconds,
			&title, &category,
		); err != nil {
			return nil, err
		}
		// Quiz rows are deactivated rather than dropped, but a result must
		// still render if its quiz was ever removed outright.
		res.QuizTitle = quiz.DeletedQuizTitle
		res.QuizCategory = quiz.UnknownQuizCategory
		if title != nil {
			res.QuizTitle = *title
		}
		if category != nil {
			res.QuizCategory = *category
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func scanResult(row interface{ Scan(dest ...any) error }) (quiz.QuizResult, error) {
	var res quiz.QuizResult
	err := row.Scan(
		&res.ID, &res.SessionID, &res.UserProfile, &res.QuizID,
		&res.Score, &res.TotalPoints, &res.Percentage, &res.Answers,
		&res.CompletedAt, &res.TimeSpentSeconds)
	return res, err
}
