package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Category constants for the two supported user profiles.
const (
	CategoryInspector         = "inspector"
	CategoryChefEtablissement = "chef_etablissement"
)

// Difficulty constants.
const (
	DifficultyDebutant      = "debutant"
	DifficultyIntermediaire = "intermediaire"
	DifficultyAvance        = "avance"
)

// Quiz is a named, categorized set of questions with a difficulty label.
// Quizzes are deactivated rather than deleted.
type Quiz struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Question is a single multiple-choice item belonging to one quiz.
// CorrectAnswer is a 0-based index into Options.
type Question struct {
	ID            uuid.UUID `json:"id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	Prompt        string    `json:"prompt"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
	Points        int       `json:"points"`
}

// SubmittedAnswer is a caller-provided (question, selected option) pair.
// It is consumed by scoring and never persisted as-is.
type SubmittedAnswer struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedAnswer int       `json:"selected_answer"`
}

// ScoredAnswer records per-question correctness within a result. Points is
// either 0 or the question's full point value; there is no partial credit.
type ScoredAnswer struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	Points         int       `json:"points"`
}

// QuizResult is the persisted outcome of one quiz attempt by one session.
// Immutable once created.
type QuizResult struct {
	ID               uuid.UUID      `json:"id"`
	SessionID        string         `json:"session_id"`
	UserProfile      string         `json:"user_profile"`
	QuizID           uuid.UUID      `json:"quiz_id"`
	Score            int            `json:"score"`
	TotalPoints      int            `json:"total_points"`
	Percentage       int            `json:"percentage"`
	Answers          []ScoredAnswer `json:"answers"`
	CompletedAt      time.Time      `json:"completed_at"`
	TimeSpentSeconds int            `json:"time_spent_seconds"`
}

// SessionResult is a QuizResult joined with display data from its quiz.
// When the quiz row no longer exists the fallback labels are substituted.
type SessionResult struct {
	QuizResult
	QuizTitle    string `json:"quiz_title"`
	QuizCategory string `json:"quiz_category"`
}

// Fallback labels used when a result references a quiz that was removed.
const (
	DeletedQuizTitle    = "Quiz supprimé"
	UnknownQuizCategory = "unknown"
)

// QuizStats summarizes all attempts recorded for one quiz. Each average is
// rounded independently; a quiz with no attempts yields the zero value.
type QuizStats struct {
	TotalAttempts     int `json:"total_attempts"`
	AverageScore      int `json:"average_score"`
	AveragePercentage int `json:"average_percentage"`
	AverageTime       int `json:"average_time"`
}
