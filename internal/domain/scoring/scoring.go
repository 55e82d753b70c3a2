package scoring

import (
	"fmt"

	"github.com/adhd-selfcheck/backend/internal/domain/category"
	"github.com/adhd-selfcheck/backend/internal/domain/questionnaire"
)

// AnswerVector holds one answer per catalog question, aligned by position.
type AnswerVector []int

// Validate rejects vectors of the wrong length and values outside the
// answer scale. Nothing is clamped or defaulted.
func (v AnswerVector) Validate() error {
	if len(v) != questionnaire.Len() {
		return &InputError{
			Position: -1,
			Reason:   fmt.Sprintf("expected %d answers, got %d", questionnaire.Len(), len(v)),
		}
	}
	for i, a := range v {
		if a < questionnaire.MinAnswer || a > questionnaire.MaxAnswer {
			return &InputError{
				Position: i,
				Value:    a,
				Reason:   fmt.Sprintf("must be between %d and %d", questionnaire.MinAnswer, questionnaire.MaxAnswer),
			}
		}
	}
	return nil
}

// Result holds the per-category subtotals and their sum.
type Result struct {
	Total         int
	Inattention   int
	Hyperactivity int
	Impulsivity   int
}

// Score sums each answer into the subtotal of its question's category.
func Score(answers AnswerVector) (Result, error) {
	if err := answers.Validate(); err != nil {
		return Result{}, err
	}

	var r Result
	for i, a := range answers {
		switch questionnaire.At(i).Category {
		case category.Inattention:
			r.Inattention += a
		case category.Hyperactivity:
			r.Hyperactivity += a
		case category.Impulsivity:
			r.Impulsivity += a
		}
	}
	r.Total = r.Inattention + r.Hyperactivity + r.Impulsivity
	return r, nil
}

// ByCategory returns the subtotal for c, or 0 for an unknown category.
func (r Result) ByCategory(c category.Category) int {
	switch c {
	case category.Inattention:
		return r.Inattention
	case category.Hyperactivity:
		return r.Hyperactivity
	case category.Impulsivity:
		return r.Impulsivity
	}
	return 0
}

// Verify checks a Result that did not come from Score, such as one
// loaded from storage or supplied by a client.
func (r Result) Verify() error {
	if r.Total != r.Inattention+r.Hyperactivity+r.Impulsivity {
		return fmt.Errorf("total %d does not equal subtotal sum %d",
			r.Total, r.Inattention+r.Hyperactivity+r.Impulsivity)
	}
	for _, c := range category.All() {
		if s := r.ByCategory(c); s < 0 || s > questionnaire.MaxScore(c) {
			return fmt.Errorf("%s score %d outside 0..%d", c, s, questionnaire.MaxScore(c))
		}
	}
	return nil
}
