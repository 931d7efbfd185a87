package knowledge

import (
	"testing"
	"time"
)

func TestGraphRoundTrip(t *testing.T) {
	g := NewGraph()
	g.Set("python_basics", 0.42)
	g.Set("web_development", 0.0)
	g.Level = LevelIntermediate
	g.UpdatedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	back := GraphFromMap(g.ToMap())

	if back.Level != LevelIntermediate {
		t.Errorf("Level = %s, want intermediate", back.Level)
	}
	if !back.UpdatedAt.Equal(g.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", back.UpdatedAt, g.UpdatedAt)
	}
	if len(back.Topics) != 2 {
		t.Fatalf("Topics = %v, want 2 entries", back.Topics)
	}
	if back.Topics["python_basics"] != 0.42 {
		t.Errorf("python_basics = %v, want 0.42", back.Topics["python_basics"])
	}
}

func TestGraphFromMap_DirtyValues(t *testing.T) {
	g := GraphFromMap(map[string]any{
		"python_basics": "not a number",
		"level":         "advanced",
		"updated_at":    "garbage",
		"overflow":      3.0,
	})

	// Non-numeric mastery defaults to 0.5; out-of-range clamps.
	if g.Topics["python_basics"] != 0.5 {
		t.Errorf("python_basics = %v, want 0.5", g.Topics["python_basics"])
	}
	if g.Topics["overflow"] != 1.0 {
		t.Errorf("overflow = %v, want 1.0", g.Topics["overflow"])
	}
	if g.Level != LevelAdvanced {
		t.Errorf("Level = %s, want advanced", g.Level)
	}
	if !g.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt = %v, want zero for unparseable input", g.UpdatedAt)
	}
}

func TestGraphSet_IgnoresReservedKeys(t *testing.T) {
	g := NewGraph()
	g.Set(KeyLevel, 0.9)
	g.Set(KeyUpdatedAt, 0.9)
	if len(g.Topics) != 0 {
		t.Errorf("reserved keys stored as topics: %v", g.Topics)
	}
}
