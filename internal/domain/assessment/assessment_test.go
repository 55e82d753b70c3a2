package assessment_test

import (
	"errors"
	"testing"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
	"github.com/adhd-selfcheck/backend/internal/domain/interpretation"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
)

func answersOf(v int) scoring.AnswerVector {
	answers := make(scoring.AnswerVector, 18)
	for i := range answers {
		answers[i] = v
	}
	return answers
}

func TestNew_ScoresAnswers(t *testing.T) {
	a, err := assessment.New(answersOf(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Scores.Total != 36 {
		t.Errorf("expected total 36, got %d", a.Scores.Total)
	}
	if a.ID != 0 {
		t.Errorf("expected unassigned id, got %d", a.ID)
	}
	if !a.CompletedAt.IsZero() {
		t.Errorf("expected unset completion time, got %v", a.CompletedAt)
	}
}

func TestNew_RejectsMalformedAnswers(t *testing.T) {
	bad := answersOf(1)
	bad[3] = 9

	a, err := assessment.New(bad)
	if !errors.Is(err, scoring.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if a != nil {
		t.Error("expected no assessment for malformed answers")
	}
}

func TestNew_CopiesAnswers(t *testing.T) {
	answers := answersOf(1)
	a, err := assessment.New(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answers[0] = 4
	if a.Answers[0] != 1 {
		t.Errorf("expected stored answer to stay 1, got %d", a.Answers[0])
	}
}

func TestInterpretation(t *testing.T) {
	tests := []struct {
		value int
		want  interpretation.Level
	}{
		{0, interpretation.Normal},
		{1, interpretation.Mild},
		{2, interpretation.Moderate},
		{3, interpretation.HighRisk},
	}

	for _, tt := range tests {
		a, err := assessment.New(answersOf(tt.value))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := a.Interpretation().Level; got != tt.want {
			t.Errorf("all answers %d (total %d): expected %q, got %q", tt.value, a.Scores.Total, tt.want, got)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	a, _ := assessment.New(answersOf(2))
	a.ID = 7

	c := a.Clone()
	c.Answers[0] = 0
	c.ID = 8

	if a.Answers[0] != 2 || a.ID != 7 {
		t.Error("expected original to be unaffected by changes to the clone")
	}
}
