package api

import (
	"net/http"
	"strconv"

	"github.com/adhd-selfcheck/backend/internal/domain/category"
	"github.com/adhd-selfcheck/backend/internal/domain/questionnaire"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionResponse struct {
	ID            int    `json:"id" example:"1"`
	Category      string `json:"category" example:"inattention"`
	CategoryLabel string `json:"categoryLabel" example:"주의력 부족"`
	Prompt        string `json:"text"`
}

type AnswerOptionResponse struct {
	Value int    `json:"value" example:"2"`
	Label string `json:"label" example:"때때로"`
}

type CategoryResponse struct {
	Category      string `json:"category" example:"hyperactivity"`
	Label         string `json:"label" example:"과다행동"`
	QuestionCount int    `json:"questionCount" example:"5"`
	MaxScore      int    `json:"maxScore" example:"20"`
}

type CatalogResponse struct {
	Questions        []QuestionResponse     `json:"questions"`
	Options          []AnswerOptionResponse `json:"options"`
	Categories       []CategoryResponse     `json:"categories"`
	MaxTotal         int                    `json:"maxTotal" example:"72"`
	EstimatedMinutes int                    `json:"estimatedMinutes" example:"9"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getQuestions returns the questionnaire.
// @Summary      Get the questionnaire
// @Description  Returns the 18 questions in order, the shared answer scale, per-category maxima and the estimated minutes left after `answered` questions.
// @Tags         Questionnaire
// @Produce      json
// @Param        answered  query     int  false  "Questions already answered (0-18)"
// @Success      200       {object}  CatalogResponse
// @Failure      400       {object}  ErrorResponse
// @Router       /api/questions [get]
func (h *Handler) getQuestions(w http.ResponseWriter, r *http.Request) {
	answered := 0
	if raw := r.URL.Query().Get("answered"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > questionnaire.Len() {
			respondError(w, http.StatusBadRequest, "invalid answered count",
				"answered must be between 0 and "+strconv.Itoa(questionnaire.Len()))
			return
		}
		answered = n
	}

	questions := questionnaire.Questions()
	resp := CatalogResponse{
		Questions:        make([]QuestionResponse, len(questions)),
		Options:          make([]AnswerOptionResponse, 0, 5),
		Categories:       make([]CategoryResponse, 0, 3),
		MaxTotal:         questionnaire.MaxTotal(),
		EstimatedMinutes: questionnaire.EstimatedMinutesRemaining(answered),
	}
	for i, q := range questions {
		resp.Questions[i] = QuestionResponse{
			ID:            q.ID,
			Category:      string(q.Category),
			CategoryLabel: q.Category.Label(),
			Prompt:        q.Prompt,
		}
	}
	for _, o := range questionnaire.AnswerOptions() {
		resp.Options = append(resp.Options, AnswerOptionResponse{Value: o.Value, Label: o.Label})
	}
	for _, c := range category.All() {
		resp.Categories = append(resp.Categories, CategoryResponse{
			Category:      string(c),
			Label:         c.Label(),
			QuestionCount: questionnaire.CountByCategory(c),
			MaxScore:      questionnaire.MaxScore(c),
		})
	}

	respondJSON(w, http.StatusOK, resp)
}
