package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
)

// ── Request / Response types ────────────────────────────────────────────────

const exportVersion = "1.0"

type ExportAssessment struct {
	ID          int64     `json:"id"`
	Answers     []int     `json:"answers"`
	CompletedAt time.Time `json:"completedAt"`
	ScoresResponse
}

type ExportData struct {
	Version     string             `json:"version" example:"1.0"`
	ExportedAt  string             `json:"exportedAt"`
	Assessments []ExportAssessment `json:"assessments"`
}

// importDocument is the import-side view of ExportData. Entries stay raw so
// that ids, timestamps and scores are never parsed.
type importDocument struct {
	Assessments []json.RawMessage `json:"assessments"`
}

type importEntry struct {
	Answers json.RawMessage `json:"answers"`
}

type ImportRejection struct {
	Index  int    `json:"index" example:"3"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int               `json:"imported" example:"12"`
	Rejected []ImportRejection `json:"rejected"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll dumps every stored assessment as JSON.
// @Summary      Export assessments
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  ErrorResponse
// @Router       /api/export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.assessments.List(r.Context())
	if h.handleStoreError(w, err, "assessments") {
		return
	}

	data := ExportData{
		Version:     exportVersion,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Assessments: make([]ExportAssessment, len(all)),
	}
	for i, a := range all {
		data.Assessments[i] = ExportAssessment{
			ID:             a.ID,
			Answers:        []int(a.Answers),
			CompletedAt:    a.CompletedAt,
			ScoresResponse: toScoresResponse(a.Scores),
		}
	}

	w.Header().Set("Content-Disposition", "attachment; filename=adhd-selfcheck-export.json")
	respondJSON(w, http.StatusOK, data)
}

// exportSpreadsheet dumps every stored assessment as an xlsx workbook.
// @Summary      Export assessments as a spreadsheet
// @Tags         Export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  ErrorResponse
// @Router       /api/export.xlsx [get]
func (h *Handler) exportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	all, err := h.assessments.List(r.Context())
	if h.handleStoreError(w, err, "assessments") {
		return
	}

	body, err := buildSpreadsheet(all)
	if err != nil {
		h.logger.Error("failed to build spreadsheet", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build spreadsheet")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=adhd-selfcheck-export.xlsx")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// importAll re-scores and stores the assessments of a JSON export.
// @Summary      Import assessments
// @Description  Accepts the body produced by GET /api/export. Every entry is re-scored from its answers; stored scores, ids and timestamps are ignored. Invalid entries are skipped and reported.
// @Tags         Export
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Export document"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	var doc importDocument
	if !decodeAndValidate(w, r, importSchema, &doc) {
		return
	}

	var (
		batch     []scoring.AnswerVector
		positions []int
		rejected  = []ImportRejection{}
	)
	for i, raw := range doc.Assessments {
		answers, err := decodeImportAnswers(raw)
		if err != nil {
			rejected = append(rejected, ImportRejection{Index: i, Reason: err.Error()})
			continue
		}
		batch = append(batch, answers)
		positions = append(positions, i)
	}

	result, err := h.assessments.Import(r.Context(), batch)
	if err != nil {
		h.logger.Error("import failed", "error", err, "imported", result.Imported)
		respondError(w, http.StatusInternalServerError, "import failed")
		return
	}

	for _, rej := range result.Rejected {
		rejected = append(rejected, ImportRejection{Index: positions[rej.Index], Reason: rej.Reason})
	}
	sort.Slice(rejected, func(i, j int) bool { return rejected[i].Index < rejected[j].Index })

	respondJSON(w, http.StatusCreated, ImportResult{Imported: result.Imported, Rejected: rejected})
}

// decodeImportAnswers reads only the answers of one export entry. Range and
// length checks are left to scoring.
func decodeImportAnswers(raw json.RawMessage) (scoring.AnswerVector, error) {
	var entry importEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, errors.New("entry is not an object")
	}
	if len(entry.Answers) == 0 || bytes.Equal(entry.Answers, []byte("null")) {
		return nil, errors.New("answers: missing")
	}

	var values []json.RawMessage
	if err := json.Unmarshal(entry.Answers, &values); err != nil {
		return nil, errors.New("answers: not an array")
	}
	answers := make(scoring.AnswerVector, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(string(bytes.TrimSpace(v)))
		if err != nil {
			return nil, fmt.Errorf("answers[%d]: %s is not an integer", i, v)
		}
		answers[i] = n
	}
	return answers, nil
}
