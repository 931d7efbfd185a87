package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/devraj/learnpath/internal/llm"
)

// GradeSchema defines the JSON schema for LLM grading responses.
var GradeSchema = &llm.Schema{
	Name:        "exercise-grade",
	Description: "A rubric-based grade for a single exercise answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Overall correctness of the answer, 0.0 (wrong) to 1.0 (fully correct)",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the grade",
			},
		},
		"required":             []any{"score", "rationale"},
		"additionalProperties": false,
	},
}

const gradeSystemPrompt = `You grade programming-course exercise answers.
Given the question, the expected answer and the learner's answer, judge
how correct the learner's answer is. Partial credit is allowed. Judge
substance, not phrasing; a correct answer in different words scores high.`

// LLMGrader grades free-text answers with a rubric prompt over the LLM
// provider. Any provider failure falls back to the stub grader so a
// missing API key or network outage never blocks feedback.
type LLMGrader struct {
	provider llm.Provider
	fallback Grader
}

// NewLLMGrader creates an LLMGrader. A nil fallback gets a StubGrader.
func NewLLMGrader(provider llm.Provider, fallback Grader) *LLMGrader {
	if fallback == nil {
		fallback = NewStubGrader(nil)
	}
	return &LLMGrader{provider: provider, fallback: fallback}
}

type gradeOutput struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

func (g *LLMGrader) Score(ctx context.Context, ex Exercise) (float64, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	userMsg := fmt.Sprintf(
		"Question:\n%s\n\nExpected answer:\n%s\n\nLearner's answer:\n%s",
		ex.Question, ex.CorrectAnswer, ex.UserAnswer)

	req := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:    GradeSchema,
		MaxTokens: 512,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM grading failed, using stub: %v\n", err)
		return g.fallback.Score(ctx, ex)
	}

	var out gradeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unparseable grade, using stub: %v\n", err)
		return g.fallback.Score(ctx, ex)
	}

	return clamp01(out.Score), nil
}
