package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/category"
	"github.com/adhd-selfcheck/backend/internal/domain/interpretation"
	"github.com/adhd-selfcheck/backend/internal/domain/report"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
)

func build(r scoring.Result, opts report.Options) report.Report {
	return report.Build(r, interpretation.Interpret(r.Total), opts)
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    report.Severity
	}{
		{0, report.SeverityLow},
		{39.9, report.SeverityLow},
		{40, report.SeverityElevated},
		{59.9, report.SeverityElevated},
		{60, report.SeverityHigh},
		{79.9, report.SeverityHigh},
		{80, report.SeverityVeryHigh},
		{100, report.SeverityVeryHigh},
	}

	for _, tt := range tests {
		if got := report.SeverityFor(tt.percent); got != tt.want {
			t.Errorf("%.1f%%: expected %q, got %q", tt.percent, tt.want, got)
		}
	}
}

func TestBuild_Breakdown(t *testing.T) {
	r := scoring.Result{Total: 45, Inattention: 30, Hyperactivity: 10, Impulsivity: 5}
	rep := build(r, report.Options{})

	if rep.Total != 45 || rep.MaxTotal != 72 {
		t.Errorf("expected 45/72, got %d/%d", rep.Total, rep.MaxTotal)
	}
	if len(rep.Breakdown) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(rep.Breakdown))
	}

	want := []struct {
		cat      category.Category
		max      int
		severity report.Severity
	}{
		{category.Inattention, 36, report.SeverityVeryHigh},   // 83%
		{category.Hyperactivity, 20, report.SeverityElevated}, // 50%
		{category.Impulsivity, 16, report.SeverityLow},        // 31%
	}
	for i, w := range want {
		got := rep.Breakdown[i]
		if got.Category != w.cat {
			t.Errorf("position %d: expected %q, got %q", i, w.cat, got.Category)
		}
		if got.Max != w.max {
			t.Errorf("%s: expected max %d, got %d", w.cat, w.max, got.Max)
		}
		if got.Severity != w.severity {
			t.Errorf("%s: expected severity %q, got %q (%.1f%%)", w.cat, w.severity, got.Severity, got.Percent)
		}
	}

	if rep.Interpretation.Level != interpretation.HighRisk {
		t.Errorf("expected %q, got %q", interpretation.HighRisk, rep.Interpretation.Level)
	}
}

func TestBuild_Achievements(t *testing.T) {
	unlocked := func(rep report.Report, typ report.AchievementType) bool {
		for _, a := range rep.Achievements {
			if a.Type == typ {
				return a.Unlocked
			}
		}
		t.Fatalf("achievement %q missing", typ)
		return false
	}

	zero := build(scoring.Result{}, report.Options{})
	if !unlocked(zero, report.AchievementCompletion) || !unlocked(zero, report.AchievementFirst) {
		t.Error("expected completion and first badges to always unlock")
	}
	if unlocked(zero, report.AchievementAccuracy) {
		t.Error("expected accuracy badge locked for a zero total")
	}
	if unlocked(zero, report.AchievementSpeed) {
		t.Error("expected speed badge locked when elapsed time is unknown")
	}

	some := scoring.Result{Total: 3, Inattention: 3}
	if !unlocked(build(some, report.Options{}), report.AchievementAccuracy) {
		t.Error("expected accuracy badge unlocked for a non-zero total")
	}
	if !unlocked(build(some, report.Options{Elapsed: 3 * time.Minute}), report.AchievementSpeed) {
		t.Error("expected speed badge unlocked under five minutes")
	}
	if unlocked(build(some, report.Options{Elapsed: report.SpeedThreshold}), report.AchievementSpeed) {
		t.Error("expected speed badge locked at exactly five minutes")
	}
}

func TestBuild_ShareText(t *testing.T) {
	r := scoring.Result{Total: 20, Inattention: 12, Hyperactivity: 5, Impulsivity: 3}
	rep := build(r, report.Options{})

	for _, want := range []string{
		"총점: 20/72점",
		"주의력 부족: 12/36점",
		"과다행동: 5/20점",
		"충동성: 3/16점",
		"결과: 경미한 위험군",
		"#ADHD자가진단",
	} {
		if !strings.Contains(rep.ShareText, want) {
			t.Errorf("expected share text to contain %q, got:\n%s", want, rep.ShareText)
		}
	}
}
