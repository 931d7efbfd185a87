package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/devraj/learnpath/internal/feedback"
	"github.com/devraj/learnpath/internal/knowledge"
	"github.com/devraj/learnpath/internal/llm"
)

const materialsSystemPrompt = `You are a programming education expert writing
personalized learning materials. Pitch the explanation at the stated learner
level: simple language and basics for beginners, core concepts with examples
for intermediate learners, advanced features and best practice for advanced
learners. Always produce exactly 3 exercises.`

// maxExercises bounds generated exercise lists; anything beyond this is
// dropped rather than rejected.
const maxExercises = 3

// GenProvider generates materials with the LLM, seeded from the static
// library's concept and key points. Any generation or parsing failure
// falls back to the template materials, so a dead API key degrades
// quality but never availability.
type GenProvider struct {
	provider  llm.Provider
	templates *TemplateProvider
}

// NewGenProvider creates a GenProvider. A nil templates falls back to
// the built-in library.
func NewGenProvider(provider llm.Provider, templates *TemplateProvider) *GenProvider {
	if templates == nil {
		templates = NewTemplateProvider()
	}
	return &GenProvider{provider: provider, templates: templates}
}

type materialsOutput struct {
	Concept     string           `json:"concept"`
	KeyPoints   []string         `json:"key_points"`
	Explanation string           `json:"explanation"`
	Exercises   []exerciseOutput `json:"exercises"`
}

type exerciseOutput struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

func (p *GenProvider) MaterialsFor(ctx context.Context, goal string, levelCtx knowledge.LevelAnalysis) (Materials, error) {
	seed, _ := p.templates.MaterialsFor(ctx, goal, levelCtx)

	generated, err := p.generate(ctx, goal, levelCtx, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: material generation failed for %s, using templates: %v\n", goal, err)
		return seed, nil
	}
	return generated, nil
}

func (p *GenProvider) generate(ctx context.Context, goal string, levelCtx knowledge.LevelAnalysis, seed Materials) (Materials, error) {
	ctx = llm.WithPurpose(ctx, "materials")

	userMsg := fmt.Sprintf(
		"Topic: %s\nLearner level: %s\nKey points to cover: %s",
		seed.Concept, levelCtx.Level, strings.Join(seed.KeyPoints, ", "))

	req := llm.Request{
		System: materialsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      MaterialsSchema,
		MaxTokens:   2048,
		Temperature: 0.7,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return Materials{}, fmt.Errorf("material generation for %s: %w", goal, err)
	}

	var out materialsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Materials{}, fmt.Errorf("parse materials response: %w", err)
	}

	m := Materials{
		Concept:     out.Concept,
		KeyPoints:   out.KeyPoints,
		Explanation: out.Explanation,
	}
	for i, ex := range out.Exercises {
		if i >= maxExercises {
			break
		}
		t := feedback.ExerciseType(ex.Type)
		if !t.Valid() {
			continue
		}
		m.Exercises = append(m.Exercises, Exercise{
			Type:     t,
			Question: ex.Question,
			Options:  ex.Options,
			Answer:   ex.Answer,
		})
	}
	return m, nil
}
