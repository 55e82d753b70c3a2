package category_test

import (
	"testing"

	"github.com/adhd-selfcheck/backend/internal/domain/category"
)

func TestAll_DisplayOrder(t *testing.T) {
	got := category.All()
	want := []category.Category{category.Inattention, category.Hyperactivity, category.Impulsivity}

	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLabel(t *testing.T) {
	for _, c := range category.All() {
		if c.Label() == "" {
			t.Errorf("expected non-empty label for %q", c)
		}
	}

	if category.Category("sleep").Label() != "" {
		t.Error("expected empty label for unknown category")
	}
}

func TestParse(t *testing.T) {
	c, err := category.Parse("impulsivity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != category.Impulsivity {
		t.Errorf("expected %q, got %q", category.Impulsivity, c)
	}

	if _, err := category.Parse("Impulsivity"); err == nil {
		t.Error("expected error for wrong-case category, got nil")
	}
	if _, err := category.Parse(""); err == nil {
		t.Error("expected error for empty category, got nil")
	}
}
