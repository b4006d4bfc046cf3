package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	httperrors "github.com/edunumeric/quiz-ia-platform/pkg/http/errors"
)

// HTTPHandler exposes REST endpoints for the quiz catalog.
type HTTPHandler struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandler constructs a catalog HTTP handler.
func NewHTTPHandler(service *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: service,
		logger:  logger.With().Str("component", "quiz_http").Logger(),
	}
}

// HandleList handles GET /v1/quizzes?category={category}
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "category query parameter is required", "category")
		return
	}

	quizzes, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		h.logger.Error().Err(err).Str("category", category).Msg("quiz list failed")
		httperrors.RespondInternalError(w, "could not load quizzes")
		return
	}
	if quizzes == nil {
		quizzes = []Quiz{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"quizzes": quizzes})
}

// HandleGet handles GET /v1/quizzes/{id}
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	quizID, ok := quizIDFromPath(w, r)
	if !ok {
		return
	}

	q, err := h.service.Get(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "quiz does not exist")
			return
		}
		h.logger.Error().Err(err).Stringer("quiz_id", quizID).Msg("quiz fetch failed")
		httperrors.RespondInternalError(w, "could not load quiz")
		return
	}

	respondJSON(w, http.StatusOK, q)
}

// HandleQuestions handles GET /v1/quizzes/{id}/questions
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	quizID, ok := quizIDFromPath(w, r)
	if !ok {
		return
	}

	questions, err := h.service.Questions(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "quiz does not exist")
			return
		}
		h.logger.Error().Err(err).Stringer("quiz_id", quizID).Msg("question fetch failed")
		httperrors.RespondInternalError(w, "could not load questions")
		return
	}
	if questions == nil {
		questions = []Question{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func quizIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	quizID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid quiz id")
		return uuid.Nil, false
	}
	return quizID, true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
