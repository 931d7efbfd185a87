package feedback

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/devraj/learnpath/internal/llm"
)

func TestExactMatchGrader(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		want    float64
	}{
		{"match", "B", "B", 1.0},
		{"mismatch", "A", "B", 0.0},
		{"empty answer never matches", "", "", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := Exercise{Type: TypeMultipleChoice, UserAnswer: tt.user, CorrectAnswer: tt.correct}
			got, err := ExactMatchGrader{}.Score(context.Background(), ex)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestStubGrader_CodingBands(t *testing.T) {
	g := NewStubGrader(rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < 50; i++ {
		long, _ := g.Score(context.Background(), Exercise{
			Type:       TypeCoding,
			UserAnswer: "def solve(): return 42",
		})
		if long < 0.7 || long > 1.0 {
			t.Fatalf("long coding answer scored %f, want [0.7, 1.0]", long)
		}

		short, _ := g.Score(context.Background(), Exercise{
			Type:       TypeCoding,
			UserAnswer: "idk",
		})
		if short < 0.1 || short > 0.5 {
			t.Fatalf("short coding answer scored %f, want [0.1, 0.5]", short)
		}
	}
}

func TestStubGrader_ConceptualBands(t *testing.T) {
	g := NewStubGrader(rand.New(rand.NewPCG(3, 4)))

	for i := 0; i < 50; i++ {
		long, _ := g.Score(context.Background(), Exercise{
			Type:       TypeConceptual,
			UserAnswer: strings.Repeat("a", 21),
		})
		if long < 0.6 || long > 1.0 {
			t.Fatalf("long conceptual answer scored %f, want [0.6, 1.0]", long)
		}

		short, _ := g.Score(context.Background(), Exercise{
			Type:       TypeConceptual,
			UserAnswer: strings.Repeat("a", 20),
		})
		if short < 0.1 || short > 0.6 {
			t.Fatalf("boundary conceptual answer scored %f, want [0.1, 0.6]", short)
		}
	}
}

func TestStubGrader_CodingLengthBoundary(t *testing.T) {
	g := NewStubGrader(rand.New(rand.NewPCG(5, 6)))

	// Exactly 10 chars is NOT over the threshold; it lands in the low band.
	got, _ := g.Score(context.Background(), Exercise{
		Type:       TypeCoding,
		UserAnswer: strings.Repeat("x", 10),
	})
	if got < 0.1 || got > 0.5 {
		t.Errorf("10-char coding answer scored %f, want [0.1, 0.5]", got)
	}
}

func TestStubGrader_NilRandIsUsable(t *testing.T) {
	g := NewStubGrader(nil)
	got, err := g.Score(context.Background(), Exercise{Type: TypeCoding, UserAnswer: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < 0.1 || got > 0.5 {
		t.Errorf("got %f, want [0.1, 0.5]", got)
	}
}

func TestLLMGrader_UsesProviderScore(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":0.85,"rationale":"mostly right"}`)},
	)
	g := NewLLMGrader(mock, nil)

	got, err := g.Score(context.Background(), Exercise{
		Type:       TypeConceptual,
		Question:   "What is a slice?",
		UserAnswer: "A view over an underlying array",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.85 {
		t.Errorf("got %f, want 0.85", got)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != GradeSchema {
		t.Error("expected grading schema on the request")
	}
}

func TestLLMGrader_ClampsOutOfRangeScore(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":1.4,"rationale":"over-eager"}`)},
	)
	g := NewLLMGrader(mock, nil)

	got, err := g.Score(context.Background(), Exercise{Type: TypeCoding, UserAnswer: "code"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("got %f, want clamped 1.0", got)
	}
}

func TestLLMGrader_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue always errors
	fallback := NewStubGrader(rand.New(rand.NewPCG(7, 8)))
	g := NewLLMGrader(mock, fallback)

	got, err := g.Score(context.Background(), Exercise{
		Type:       TypeCoding,
		UserAnswer: "def solve(): return 42",
	})
	if err != nil {
		t.Fatalf("fallback should absorb provider errors, got: %v", err)
	}
	if got < 0.7 || got > 1.0 {
		t.Errorf("fallback score %f, want stub band [0.7, 1.0]", got)
	}
}
