package api

import (
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
	"github.com/adhd-selfcheck/backend/internal/domain/interpretation"
	"github.com/adhd-selfcheck/backend/internal/domain/report"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
	"github.com/adhd-selfcheck/backend/internal/service"
)

type ScoresResponse struct {
	TotalScore         int `json:"totalScore" example:"31"`
	InattentionScore   int `json:"inattentionScore" example:"18"`
	HyperactivityScore int `json:"hyperactivityScore" example:"8"`
	ImpulsivityScore   int `json:"impulsivityScore" example:"5"`
}

type InterpretationResponse struct {
	Level           string   `json:"level" example:"moderate"`
	Label           string   `json:"label" example:"중등도 위험군"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

type BreakdownResponse struct {
	Category string  `json:"category" example:"inattention"`
	Label    string  `json:"label" example:"주의력 부족"`
	Score    int     `json:"score" example:"18"`
	Max      int     `json:"max" example:"36"`
	Percent  float64 `json:"percent" example:"50"`
	Severity string  `json:"severity" example:"elevated"`
}

type AchievementResponse struct {
	Type        string `json:"type" example:"completion"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type ReportResponse struct {
	TotalScore     int                    `json:"totalScore" example:"31"`
	MaxTotal       int                    `json:"maxTotal" example:"72"`
	Breakdown      []BreakdownResponse    `json:"breakdown"`
	Interpretation InterpretationResponse `json:"interpretation"`
	Achievements   []AchievementResponse  `json:"achievements"`
	ShareText      string                 `json:"shareText"`
}

type AssessmentResponse struct {
	ID      int64 `json:"id" example:"1"`
	Answers []int `json:"answers"`
	ScoresResponse
	Level       string    `json:"level" example:"moderate"`
	CompletedAt time.Time `json:"completedAt"`
}

// EvaluationResponse is returned by POST /api/score.
type EvaluationResponse struct {
	Scores         ScoresResponse         `json:"scores"`
	Interpretation InterpretationResponse `json:"interpretation"`
	Report         ReportResponse         `json:"report"`
}

// SubmitAssessmentResponse is the stored record plus its evaluation.
type SubmitAssessmentResponse struct {
	AssessmentResponse
	Interpretation InterpretationResponse `json:"interpretation"`
	Report         ReportResponse         `json:"report"`
}

func toScoresResponse(r scoring.Result) ScoresResponse {
	return ScoresResponse{
		TotalScore:         r.Total,
		InattentionScore:   r.Inattention,
		HyperactivityScore: r.Hyperactivity,
		ImpulsivityScore:   r.Impulsivity,
	}
}

func toInterpretationResponse(in interpretation.Interpretation) InterpretationResponse {
	return InterpretationResponse{
		Level:           string(in.Level),
		Label:           in.Level.Label(),
		Description:     in.Description,
		Recommendations: in.Recommendations,
	}
}

func toReportResponse(rep report.Report) ReportResponse {
	resp := ReportResponse{
		TotalScore:     rep.Total,
		MaxTotal:       rep.MaxTotal,
		Breakdown:      make([]BreakdownResponse, len(rep.Breakdown)),
		Interpretation: toInterpretationResponse(rep.Interpretation),
		Achievements:   make([]AchievementResponse, len(rep.Achievements)),
		ShareText:      rep.ShareText,
	}
	for i, b := range rep.Breakdown {
		resp.Breakdown[i] = BreakdownResponse{
			Category: string(b.Category),
			Label:    b.Label,
			Score:    b.Score,
			Max:      b.Max,
			Percent:  b.Percent,
			Severity: string(b.Severity),
		}
	}
	for i, a := range rep.Achievements {
		resp.Achievements[i] = AchievementResponse{
			Type:        string(a.Type),
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    a.Unlocked,
		}
	}
	return resp
}

func toAssessmentResponse(a *assessment.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:             a.ID,
		Answers:        []int(a.Answers),
		ScoresResponse: toScoresResponse(a.Scores),
		Level:          string(interpretation.Classify(a.Scores.Total)),
		CompletedAt:    a.CompletedAt,
	}
}

func toEvaluationResponse(e service.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		Scores:         toScoresResponse(e.Scores),
		Interpretation: toInterpretationResponse(e.Interpretation),
		Report:         toReportResponse(e.Report),
	}
}
