package scoring

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
	httperrors "github.com/edunumeric/quiz-ia-platform/pkg/http/errors"
)

// SubmitRequest is the POST /v1/results payload. Selected answer indices and
// time spent are deliberately not range-checked (an out-of-range index just
// grades as incorrect).
type SubmitRequest struct {
	SessionID   string `json:"session_id"`
	UserProfile string `json:"user_profile"`
	QuizID      string `json:"quiz_id"`
	Answers     []struct {
		QuestionID     string `json:"question_id"`
		SelectedAnswer int    `json:"selected_answer"`
	} `json:"answers"`
	TimeSpentSeconds int `json:"time_spent_seconds"`
}

// HTTPHandler exposes the submission endpoint.
type HTTPHandler struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandler creates the scoring HTTP handler.
func NewHTTPHandler(service *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: service,
		logger:  logger.With().Str("component", "scoring_http").Logger(),
	}
}

// HandleSubmit handles POST /v1/results
func (h *HTTPHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	if req.SessionID == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "session_id is required", "session_id")
		return
	}
	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "quiz_id must be a valid UUID", "quiz_id")
		return
	}

	answers := make([]quiz.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		questionID, err := uuid.Parse(a.QuestionID)
		if err != nil {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "question_id must be a valid UUID", "answers")
			return
		}
		answers = append(answers, quiz.SubmittedAnswer{
			QuestionID:     questionID,
			SelectedAnswer: a.SelectedAnswer,
		})
	}

	result, err := h.service.Submit(r.Context(), Submission{
		SessionID:        req.SessionID,
		UserProfile:      req.UserProfile,
		QuizID:           quizID,
		Answers:          answers,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "quiz does not exist")
			return
		}
		h.logger.Error().Err(err).Stringer("quiz_id", quizID).Msg("submission failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeSubmitFailed, "could not record submission")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"result_id": result.ID.String()})
}
