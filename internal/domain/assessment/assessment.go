package assessment

import (
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/interpretation"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
)

// Assessment is one completed questionnaire. ID and CompletedAt are zero
// until a store persists it.
type Assessment struct {
	ID          int64
	Answers     scoring.AnswerVector
	Scores      scoring.Result
	CompletedAt time.Time
}

// New validates and scores the answers. The answers are copied so later
// changes to the caller's slice do not leak into the record.
func New(answers scoring.AnswerVector) (*Assessment, error) {
	scores, err := scoring.Score(answers)
	if err != nil {
		return nil, err
	}

	owned := make(scoring.AnswerVector, len(answers))
	copy(owned, answers)

	return &Assessment{
		Answers: owned,
		Scores:  scores,
	}, nil
}

// Interpretation resolves the stored total into its risk tier.
func (a *Assessment) Interpretation() interpretation.Interpretation {
	return interpretation.Interpret(a.Scores.Total)
}

// Clone returns a deep copy, used by stores that hand out records.
func (a *Assessment) Clone() *Assessment {
	c := *a
	c.Answers = make(scoring.AnswerVector, len(a.Answers))
	copy(c.Answers, a.Answers)
	return &c
}
