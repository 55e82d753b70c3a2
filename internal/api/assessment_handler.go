package api

import (
	"net/http"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/report"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
	"github.com/adhd-selfcheck/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

// SubmitAssessmentRequest is the completed questionnaire. The score fields
// are what the client computed; when present they must all be sent and must
// match the server's scores.
type SubmitAssessmentRequest struct {
	Answers            []int    `json:"answers"`
	TotalScore         *int     `json:"totalScore,omitempty"`
	InattentionScore   *int     `json:"inattentionScore,omitempty"`
	HyperactivityScore *int     `json:"hyperactivityScore,omitempty"`
	ImpulsivityScore   *int     `json:"impulsivityScore,omitempty"`
	ElapsedSeconds     *float64 `json:"elapsedSeconds,omitempty" example:"185"`
}

func (req SubmitAssessmentRequest) claimedScores() *scoring.Result {
	if req.TotalScore == nil || req.InattentionScore == nil ||
		req.HyperactivityScore == nil || req.ImpulsivityScore == nil {
		return nil
	}
	return &scoring.Result{
		Total:         *req.TotalScore,
		Inattention:   *req.InattentionScore,
		Hyperactivity: *req.HyperactivityScore,
		Impulsivity:   *req.ImpulsivityScore,
	}
}

func (req SubmitAssessmentRequest) elapsed() time.Duration {
	if req.ElapsedSeconds == nil {
		return 0
	}
	return time.Duration(*req.ElapsedSeconds * float64(time.Second))
}

// ── Handlers ────────────────────────────────────────────────────────────────

// scoreAnswers scores answers without storing them.
// @Summary      Preview scores
// @Description  Scores 18 answers and returns the interpretation and report. Nothing is stored.
// @Tags         Assessments
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAssessmentRequest  true  "Answers"
// @Success      200   {object}  EvaluationResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/score [post]
func (h *Handler) scoreAnswers(w http.ResponseWriter, r *http.Request) {
	var req SubmitAssessmentRequest
	if !decodeAndValidate(w, r, submissionSchema, &req) {
		return
	}

	eval, err := h.assessments.Evaluate(scoring.AnswerVector(req.Answers), report.Options{Elapsed: req.elapsed()})
	if h.handleSubmitError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toEvaluationResponse(eval))
}

// createAssessment stores a completed questionnaire.
// @Summary      Submit an assessment
// @Description  Scores the answers server-side and stores the result. Client-computed scores, if sent, must match.
// @Tags         Assessments
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAssessmentRequest  true  "Completed questionnaire"
// @Success      201   {object}  SubmitAssessmentResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/assessments [post]
func (h *Handler) createAssessment(w http.ResponseWriter, r *http.Request) {
	var req SubmitAssessmentRequest
	if !decodeAndValidate(w, r, submissionSchema, &req) {
		return
	}

	a, eval, err := h.assessments.Submit(r.Context(), service.SubmitRequest{
		Answers: scoring.AnswerVector(req.Answers),
		Scores:  req.claimedScores(),
		Elapsed: req.elapsed(),
	})
	if h.handleSubmitError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, SubmitAssessmentResponse{
		AssessmentResponse: toAssessmentResponse(a),
		Interpretation:     toInterpretationResponse(eval.Interpretation),
		Report:             toReportResponse(eval.Report),
	})
}

// listAssessments returns every stored assessment.
// @Summary      List assessments
// @Tags         Assessments
// @Produce      json
// @Success      200  {array}   AssessmentResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/assessments [get]
func (h *Handler) listAssessments(w http.ResponseWriter, r *http.Request) {
	all, err := h.assessments.List(r.Context())
	if h.handleStoreError(w, err, "assessments") {
		return
	}

	response := make([]AssessmentResponse, len(all))
	for i, a := range all {
		response[i] = toAssessmentResponse(a)
	}
	respondJSON(w, http.StatusOK, response)
}

// getAssessment returns one stored assessment.
// @Summary      Get an assessment
// @Tags         Assessments
// @Produce      json
// @Param        id   path      int  true  "Assessment ID"
// @Success      200  {object}  AssessmentResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/assessments/{id} [get]
func (h *Handler) getAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.assessments.Get(r.Context(), id)
	if h.handleStoreError(w, err, "assessment") {
		return
	}
	respondJSON(w, http.StatusOK, toAssessmentResponse(a))
}

// getAssessmentReport rebuilds the results page for a stored assessment.
// @Summary      Get an assessment report
// @Description  Category breakdown, interpretation, achievements and share text for a stored assessment.
// @Tags         Assessments
// @Produce      json
// @Param        id   path      int  true  "Assessment ID"
// @Success      200  {object}  ReportResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/assessments/{id}/report [get]
func (h *Handler) getAssessmentReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rep, err := h.assessments.Report(r.Context(), id)
	if h.handleStoreError(w, err, "assessment") {
		return
	}
	respondJSON(w, http.StatusOK, toReportResponse(rep))
}
