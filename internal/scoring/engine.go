package scoring

import (
	"math"

	"github.com/google/uuid"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

// Outcome is the computed part of a submission: the per-question breakdown
// and the aggregate totals.
type Outcome struct {
	Answers     []quiz.ScoredAnswer
	Score       int
	TotalPoints int
	Percentage  int
}

// Engine grades submissions against a quiz's question set.
type Engine struct{}

// NewEngine creates a scoring engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Grade matches each submitted answer against the loaded questions and
// accumulates the aggregate score.
//
// A submitted answer whose question ID is not in the question set is dropped:
// it contributes nothing to Score or TotalPoints and is absent from the
// output. TotalPoints therefore reflects the matched submissions, not the
// quiz's full question set. Duplicate question IDs within one submission are
// graded independently, and an out-of-range selected index simply never
// equals the correct one.
func (e *Engine) Grade(questions []quiz.Question, submitted []quiz.SubmittedAnswer) Outcome {
	byID := make(map[uuid.UUID]quiz.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	out := Outcome{Answers: make([]quiz.ScoredAnswer, 0, len(submitted))}
	for _, ans := range submitted {
		question, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		out.TotalPoints += question.Points

		isCorrect := ans.SelectedAnswer == question.CorrectAnswer
		points := 0
		if isCorrect {
			points = question.Points
		}
		out.Score += points

		out.Answers = append(out.Answers, quiz.ScoredAnswer{
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      isCorrect,
			Points:         points,
		})
	}

	out.Percentage = percentage(out.Score, out.TotalPoints)
	return out
}

// percentage rounds once on the final ratio, never per question. A zero
// total (nothing matched) yields 0 rather than a division error.
func percentage(score, totalPoints int) int {
	if totalPoints <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalPoints) * 100))
}
