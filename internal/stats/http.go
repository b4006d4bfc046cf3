package stats

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
	httperrors "github.com/edunumeric/quiz-ia-platform/pkg/http/errors"
)

// HTTPHandler exposes REST endpoints for aggregates and session history.
type HTTPHandler struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandler constructs a stats HTTP handler.
func NewHTTPHandler(service *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: service,
		logger:  logger.With().Str("component", "stats_http").Logger(),
	}
}

// HandleQuizStats handles GET /v1/quizzes/{id}/stats
func (h *HTTPHandler) HandleQuizStats(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid quiz id")
		return
	}

	stats, err := h.service.ForQuiz(r.Context(), quizID)
	if err != nil {
		h.logger.Error().Err(err).Stringer("quiz_id", quizID).Msg("stats fetch failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeStatsFetchFailed, "could not load quiz statistics")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// HandleSessionResults handles GET /v1/sessions/{session_id}/results
func (h *HTTPHandler) HandleSessionResults(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	if sessionID == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "session id is required", "session_id")
		return
	}

	results, err := h.service.ForSession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("history fetch failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeHistoryFetchFailed, "could not load session results")
		return
	}
	if results == nil {
		results = []quiz.SessionResult{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"results": results})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
