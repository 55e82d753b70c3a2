package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Questionnaire
	mux.HandleFunc("GET /api/questions", h.getQuestions)
	mux.HandleFunc("POST /api/score", h.scoreAnswers)

	// Assessments
	mux.HandleFunc("POST /api/assessments", h.createAssessment)
	mux.HandleFunc("GET /api/assessments", h.listAssessments)
	mux.HandleFunc("GET /api/assessments/{id}", h.getAssessment)
	mux.HandleFunc("GET /api/assessments/{id}/report", h.getAssessmentReport)

	// Export / Import
	mux.HandleFunc("GET /api/export", h.exportAll)
	mux.HandleFunc("GET /api/export.xlsx", h.exportSpreadsheet)
	mux.HandleFunc("POST /api/import", h.importAll)
}
