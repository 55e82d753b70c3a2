package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
	"github.com/adhd-selfcheck/backend/internal/service"
	"github.com/adhd-selfcheck/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	assessments *service.AssessmentService
	logger      *slog.Logger
}

func NewHandler(assessments *service.AssessmentService, logger *slog.Logger) *Handler {
	return &Handler{
		assessments: assessments,
		logger:      logger,
	}
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string   `json:"message" example:"Invalid assessment data"`
	Errors  []string `json:"errors,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string, details ...string) {
	respondJSON(w, status, ErrorResponse{Message: message, Errors: details})
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleSubmitError maps validation failures to 400 and defers everything
// else to handleStoreError.
func (h *Handler) handleSubmitError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, scoring.ErrMalformedInput) || errors.Is(err, service.ErrScoreMismatch) {
		respondError(w, http.StatusBadRequest, "Invalid assessment data", err.Error())
		return true
	}
	return h.handleStoreError(w, err, "assessment")
}

// pathID parses a positive integer path value.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		respondError(w, http.StatusBadRequest, "invalid assessment id", "id must be a positive integer, got "+strconv.Quote(raw))
		return 0, false
	}
	return v, true
}
