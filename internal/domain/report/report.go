package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/category"
	"github.com/adhd-selfcheck/backend/internal/domain/interpretation"
	"github.com/adhd-selfcheck/backend/internal/domain/questionnaire"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
)

// Severity grades a category subtotal by its share of the category maximum.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityElevated Severity = "elevated"
	SeverityHigh     Severity = "high"
	SeverityVeryHigh Severity = "very_high"
)

// SeverityFor maps a percentage (0-100) onto a severity.
func SeverityFor(percent float64) Severity {
	switch {
	case percent >= 80:
		return SeverityVeryHigh
	case percent >= 60:
		return SeverityHigh
	case percent >= 40:
		return SeverityElevated
	default:
		return SeverityLow
	}
}

type CategoryBreakdown struct {
	Category category.Category
	Label    string
	Score    int
	Max      int
	Percent  float64
	Severity Severity
}

type AchievementType string

const (
	AchievementCompletion AchievementType = "completion"
	AchievementFirst      AchievementType = "first"
	AchievementAccuracy   AchievementType = "accuracy"
	AchievementSpeed      AchievementType = "speed"
)

type Achievement struct {
	Type        AchievementType
	Title       string
	Description string
	Unlocked    bool
}

// SpeedThreshold is the completion time that unlocks the speed badge.
const SpeedThreshold = 5 * time.Minute

// Options carries facts about the session that are not part of the scores.
type Options struct {
	// Elapsed is how long the respondent took. Zero means unknown.
	Elapsed time.Duration
}

type Report struct {
	Total          int
	MaxTotal       int
	Breakdown      []CategoryBreakdown
	Interpretation interpretation.Interpretation
	Achievements   []Achievement
	ShareText      string
}

// Build assembles everything the results page shows for a scored assessment.
func Build(r scoring.Result, in interpretation.Interpretation, opts Options) Report {
	breakdown := make([]CategoryBreakdown, 0, len(category.All()))
	for _, c := range category.All() {
		score := r.ByCategory(c)
		maxScore := questionnaire.MaxScore(c)
		pct := percent(score, maxScore)
		breakdown = append(breakdown, CategoryBreakdown{
			Category: c,
			Label:    c.Label(),
			Score:    score,
			Max:      maxScore,
			Percent:  pct,
			Severity: SeverityFor(pct),
		})
	}

	rep := Report{
		Total:          r.Total,
		MaxTotal:       questionnaire.MaxTotal(),
		Breakdown:      breakdown,
		Interpretation: in,
		Achievements:   achievements(r, opts),
	}
	rep.ShareText = shareText(rep)
	return rep
}

func percent(score, maxScore int) float64 {
	if maxScore == 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}

func achievements(r scoring.Result, opts Options) []Achievement {
	return []Achievement{
		{
			Type:        AchievementCompletion,
			Title:       "검사 완료",
			Description: "모든 질문에 답변했습니다",
			Unlocked:    true,
		},
		{
			Type:        AchievementFirst,
			Title:       "첫 번째 검사",
			Description: "처음으로 검사를 완료했습니다",
			Unlocked:    true,
		},
		{
			Type:        AchievementAccuracy,
			Title:       "정확한 답변",
			Description: "모든 질문에 신중하게 답변했습니다",
			Unlocked:    r.Total > 0,
		},
		{
			Type:        AchievementSpeed,
			Title:       "빠른 완료",
			Description: "5분 이내에 검사를 완료했습니다",
			Unlocked:    opts.Elapsed > 0 && opts.Elapsed < SpeedThreshold,
		},
	}
}

func shareText(rep Report) string {
	var b strings.Builder
	b.WriteString("🧠 성인 ADHD 자가진단 결과\n\n")
	fmt.Fprintf(&b, "총점: %d/%d점\n", rep.Total, rep.MaxTotal)
	for _, c := range rep.Breakdown {
		fmt.Fprintf(&b, "• %s: %d/%d점\n", c.Label, c.Score, c.Max)
	}
	fmt.Fprintf(&b, "\n결과: %s\n\n", rep.Interpretation.Level.Label())
	b.WriteString("⚠️ 본 검사는 선별용 도구입니다. 정확한 진단을 위해 전문의와 상담하세요.\n\n")
	b.WriteString("#ADHD자가진단 #정신건강")
	return b.String()
}
