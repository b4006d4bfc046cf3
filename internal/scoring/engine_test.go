package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

func question(id uuid.UUID, correct, points int) quiz.Question {
	return quiz.Question{
		ID:            id,
		QuizID:        uuid.New(),
		Prompt:        "Prompt " + id.String(),
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: correct,
		Points:        points,
	}
}

func TestGradeMixedSubmission(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	questions := []quiz.Question{
		question(q1, 1, 10),
		question(q2, 3, 15),
		question(q3, 1, 20),
	}
	submitted := []quiz.SubmittedAnswer{
		{QuestionID: q1, SelectedAnswer: 1},
		{QuestionID: q2, SelectedAnswer: 3},
		{QuestionID: q3, SelectedAnswer: 2},
	}

	out := NewEngine().Grade(questions, submitted)

	assert.Equal(t, 25, out.Score)
	assert.Equal(t, 45, out.TotalPoints)
	assert.Equal(t, 56, out.Percentage, "round(25/45*100)")

	assert.Len(t, out.Answers, 3)
	assert.True(t, out.Answers[0].IsCorrect)
	assert.Equal(t, 10, out.Answers[0].Points)
	assert.True(t, out.Answers[1].IsCorrect)
	assert.Equal(t, 15, out.Answers[1].Points)
	assert.False(t, out.Answers[2].IsCorrect)
	assert.Equal(t, 0, out.Answers[2].Points)
}

func TestGradeAllCorrectIsFullMarks(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	questions := []quiz.Question{
		question(q1, 0, 10),
		question(q2, 2, 15),
		question(q3, 1, 20),
	}
	submitted := []quiz.SubmittedAnswer{
		{QuestionID: q1, SelectedAnswer: 0},
		{QuestionID: q2, SelectedAnswer: 2},
		{QuestionID: q3, SelectedAnswer: 1},
	}

	out := NewEngine().Grade(questions, submitted)

	assert.Equal(t, 45, out.Score)
	assert.Equal(t, 45, out.TotalPoints)
	assert.Equal(t, 100, out.Percentage)
}

func TestGradeSkipsUnmatchedQuestions(t *testing.T) {
	known := uuid.New()
	questions := []quiz.Question{question(known, 0, 10)}
	submitted := []quiz.SubmittedAnswer{
		{QuestionID: uuid.New(), SelectedAnswer: 0}, // not in the quiz
		{QuestionID: known, SelectedAnswer: 0},
	}

	out := NewEngine().Grade(questions, submitted)

	assert.Len(t, out.Answers, 1, "unmatched answer must be omitted")
	assert.Equal(t, known, out.Answers[0].QuestionID)
	assert.Equal(t, 10, out.Score)
	assert.Equal(t, 10, out.TotalPoints)
	assert.Equal(t, 100, out.Percentage)
}

func TestGradePartialSubmissionShrinksTotal(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	questions := []quiz.Question{
		question(q1, 1, 10),
		question(q2, 1, 15),
		question(q3, 1, 20),
	}
	// Only two of three questions answered: the third contributes nothing.
	submitted := []quiz.SubmittedAnswer{
		{QuestionID: q1, SelectedAnswer: 1},
		{QuestionID: q2, SelectedAnswer: 0},
	}

	out := NewEngine().Grade(questions, submitted)

	assert.Len(t, out.Answers, 2)
	assert.Equal(t, 25, out.TotalPoints)
	assert.Equal(t, 10, out.Score)
	assert.Equal(t, 40, out.Percentage)
}

func TestGradeNoMatchesYieldsZeroPercentage(t *testing.T) {
	out := NewEngine().Grade(nil, []quiz.SubmittedAnswer{
		{QuestionID: uuid.New(), SelectedAnswer: 1},
	})

	assert.Empty(t, out.Answers)
	assert.Equal(t, 0, out.Score)
	assert.Equal(t, 0, out.TotalPoints)
	assert.Equal(t, 0, out.Percentage, "zero total must not divide")
}

func TestGradeDuplicateAnswersCountIndependently(t *testing.T) {
	q1 := uuid.New()
	questions := []quiz.Question{question(q1, 2, 10)}
	submitted := []quiz.SubmittedAnswer{
		{QuestionID: q1, SelectedAnswer: 2},
		{QuestionID: q1, SelectedAnswer: 0},
	}

	out := NewEngine().Grade(questions, submitted)

	assert.Len(t, out.Answers, 2)
	assert.Equal(t, 10, out.Score)
	assert.Equal(t, 20, out.TotalPoints)
	assert.Equal(t, 50, out.Percentage)
}

func TestGradeOutOfRangeIndexIsJustIncorrect(t *testing.T) {
	q1 := uuid.New()
	questions := []quiz.Question{question(q1, 1, 10)}
	submitted := []quiz.SubmittedAnswer{
		{QuestionID: q1, SelectedAnswer: 99},
	}

	out := NewEngine().Grade(questions, submitted)

	assert.False(t, out.Answers[0].IsCorrect)
	assert.Equal(t, 0, out.Score)
	assert.Equal(t, 10, out.TotalPoints)
	assert.Equal(t, 0, out.Percentage)
}

func TestGradePercentageStaysInBounds(t *testing.T) {
	for _, selected := range []int{-5, 0, 1, 2, 3, 42} {
		q1 := uuid.New()
		out := NewEngine().Grade(
			[]quiz.Question{question(q1, 1, 7)},
			[]quiz.SubmittedAnswer{{QuestionID: q1, SelectedAnswer: selected}},
		)
		assert.GreaterOrEqual(t, out.Percentage, 0)
		assert.LessOrEqual(t, out.Percentage, 100)
	}
}
