package knowledge

import (
	"slices"
	"testing"
	"time"
)

func TestRecommendNext_WeakestFirst(t *testing.T) {
	m := testModel()
	g := NewGraph()
	g.Set("python_basics", 0.6)
	g.Set("data_structures", 0.1)
	g.Set("web_development", 0.4)
	g.Set("machine_learning", 0.9)

	got := m.RecommendNext(g, 3)
	want := []string{"data_structures", "web_development", "python_basics"}
	if !slices.Equal(got, want) {
		t.Errorf("RecommendNext = %v, want %v", got, want)
	}
}

func TestRecommendNext_BackfillsUnstudied(t *testing.T) {
	m := testModel()
	g := NewGraph()
	g.Set("python_basics", 0.5)
	g.Set("machine_learning", 0.95)

	got := m.RecommendNext(g, 3)
	// One weak studied topic, then unstudied topics in table order.
	want := []string{"python_basics", "data_structures", "web_development"}
	if !slices.Equal(got, want) {
		t.Errorf("RecommendNext = %v, want %v", got, want)
	}
}

func TestRecommendNext_NeverExceedsN(t *testing.T) {
	m := testModel()
	g := NewGraph()

	for n := 0; n <= 6; n++ {
		got := m.RecommendNext(g, n)
		limit := n
		if limit > len(DefaultConfig().Weights) {
			limit = len(DefaultConfig().Weights)
		}
		if len(got) > n || len(got) != limit {
			t.Errorf("RecommendNext(empty, %d) returned %d topics", n, len(got))
		}
	}
}

func TestRecommendNext_ExcludesReservedKeys(t *testing.T) {
	m := testModel()
	g := NewGraph()
	g.Level = LevelAdvanced
	g.UpdatedAt = time.Now()

	for _, topic := range m.RecommendNext(g, 10) {
		if topic == KeyLevel || topic == KeyUpdatedAt {
			t.Errorf("reserved key %q recommended", topic)
		}
	}
}

func TestRecommendNext_ExhaustedPool(t *testing.T) {
	m := testModel()
	g := NewGraph()
	g.Set("python_basics", 0.9)
	g.Set("data_structures", 0.9)
	g.Set("web_development", 0.9)
	g.Set("machine_learning", 0.9)

	if got := m.RecommendNext(g, 3); len(got) != 0 {
		t.Errorf("RecommendNext(all mastered) = %v, want empty", got)
	}
}
