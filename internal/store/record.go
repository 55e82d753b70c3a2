package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
)

// record is the serialized form of an assessment: one row in the SQL stores,
// one JSON value in redis.
type record struct {
	ID                 int64     `json:"id"`
	Answers            []int     `json:"answers"`
	TotalScore         int       `json:"totalScore"`
	InattentionScore   int       `json:"inattentionScore"`
	HyperactivityScore int       `json:"hyperactivityScore"`
	ImpulsivityScore   int       `json:"impulsivityScore"`
	CompletedAt        time.Time `json:"completedAt"`
}

func toRecord(a *assessment.Assessment) record {
	return record{
		ID:                 a.ID,
		Answers:            []int(a.Answers),
		TotalScore:         a.Scores.Total,
		InattentionScore:   a.Scores.Inattention,
		HyperactivityScore: a.Scores.Hyperactivity,
		ImpulsivityScore:   a.Scores.Impulsivity,
		CompletedAt:        a.CompletedAt,
	}
}

func (r record) toAssessment() *assessment.Assessment {
	return &assessment.Assessment{
		ID:      r.ID,
		Answers: scoring.AnswerVector(r.Answers),
		Scores: scoring.Result{
			Total:         r.TotalScore,
			Inattention:   r.InattentionScore,
			Hyperactivity: r.HyperactivityScore,
			Impulsivity:   r.ImpulsivityScore,
		},
		CompletedAt: r.CompletedAt.UTC(),
	}
}

func encodeAnswers(answers scoring.AnswerVector) (string, error) {
	b, err := json.Marshal([]int(answers))
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}
	return string(b), nil
}

func decodeAnswers(raw []byte) (scoring.AnswerVector, error) {
	var answers []int
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return scoring.AnswerVector(answers), nil
}
