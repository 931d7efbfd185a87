package feedback

import (
	"math"
	"strings"
	"testing"
)

func TestDifficultyFactor_EmptyQuestion(t *testing.T) {
	got := DifficultyFactor("")
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("got %f, want 0.8", got)
	}
}

func TestDifficultyFactor_LengthOnly(t *testing.T) {
	// 20 chars, no keywords: 0.8 + 20/100 = 1.0.
	q := strings.Repeat("x", 20)
	got := DifficultyFactor(q)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("got %f, want 1.0", got)
	}
}

func TestDifficultyFactor_KeywordBump(t *testing.T) {
	// 20 chars including one keyword: 1.0 * 1.1 = 1.1.
	q := "implement a function"
	if len(q) != 20 {
		t.Fatalf("test question must be 20 chars, got %d", len(q))
	}
	got := DifficultyFactor(q)
	if math.Abs(got-1.1) > 1e-9 {
		t.Errorf("got %f, want 1.1", got)
	}
}

func TestDifficultyFactor_CaseInsensitiveKeywords(t *testing.T) {
	a := DifficultyFactor("Implement a function")
	b := DifficultyFactor("implement a function")
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("keyword match should ignore case: %f vs %f", a, b)
	}
}

func TestDifficultyFactor_CappedAtUpperBound(t *testing.T) {
	q := "Design and implement an advanced algorithm to optimize this complex system " +
		strings.Repeat("with many details ", 10)
	got := DifficultyFactor(q)
	if math.Abs(got-1.2) > 1e-9 {
		t.Errorf("got %f, want cap 1.2", got)
	}
}

func TestDifficultyFactor_StaysInRange(t *testing.T) {
	questions := []string{
		"",
		"short",
		strings.Repeat("a", 500),
		"optimize optimize optimize optimize",
	}
	for _, q := range questions {
		got := DifficultyFactor(q)
		if got < 0.8 || got > 1.2 {
			t.Errorf("DifficultyFactor(%q) = %f, out of [0.8, 1.2]", q, got)
		}
	}
}
