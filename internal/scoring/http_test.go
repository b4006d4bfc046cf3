package scoring

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

func submitHandler(t *testing.T, quizID, questionID uuid.UUID) (*HTTPHandler, *stubResultStore) {
	t.Helper()
	results := &stubResultStore{}
	svc := NewService(existingQuiz(quizID),
		&stubQuestionStore{list: func(context.Context, uuid.UUID) ([]quiz.Question, error) {
			return []quiz.Question{question(questionID, 1, 10)}, nil
		}},
		results, nil, zerolog.New(io.Discard))
	return NewHTTPHandler(svc, zerolog.New(io.Discard)), results
}

func TestHandleSubmitCreated(t *testing.T) {
	quizID, questionID := uuid.New(), uuid.New()
	handler, results := submitHandler(t, quizID, questionID)

	body := `{
		"session_id": "session-1",
		"user_profile": "inspector",
		"quiz_id": "` + quizID.String() + `",
		"answers": [{"question_id": "` + questionID.String() + `", "selected_answer": 1}],
		"time_spent_seconds": 42
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, results.created, 1)
	assert.Equal(t, results.created[0].ID.String(), resp["result_id"])
}

func TestHandleSubmitRejectsMissingSession(t *testing.T) {
	quizID, questionID := uuid.New(), uuid.New()
	handler, results := submitHandler(t, quizID, questionID)

	body := `{"quiz_id": "` + quizID.String() + `", "answers": []}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_id")
	assert.Empty(t, results.created)
}

func TestHandleSubmitRejectsBadQuizID(t *testing.T) {
	handler, _ := submitHandler(t, uuid.New(), uuid.New())

	body := `{"session_id": "s", "quiz_id": "not-a-uuid", "answers": []}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "quiz_id")
}

func TestHandleSubmitUnknownQuizIs404(t *testing.T) {
	handler, _ := submitHandler(t, uuid.New(), uuid.New())

	// A valid UUID that is not the stubbed quiz.
	body := `{"session_id": "s", "quiz_id": "` + uuid.NewString() + `", "answers": []}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "quiz_not_found")
}

func TestHandleSubmitRejectsMalformedJSON(t *testing.T) {
	handler, _ := submitHandler(t, uuid.New(), uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/v1/results", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}
