package content

import "github.com/devraj/learnpath/internal/llm"

// MaterialsSchema defines the JSON schema for LLM material generation
// responses.
var MaterialsSchema = &llm.Schema{
	Name:        "learning-materials",
	Description: "Personalized learning materials for one topic at one learner level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concept": map[string]any{
				"type":        "string",
				"description": "Short name of the concept being taught",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 key points the learner should take away",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A 200-300 word explanation pitched at the learner's level, with a concrete example",
			},
			"exercises": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "coding", "conceptual"},
							"description": "Exercise kind",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The exercise prompt",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for multiple_choice, empty otherwise",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The expected answer",
						},
					},
					"required": []any{"type", "question", "answer"},
				},
				"description": "Exactly 3 exercises matched to the learner's level",
			},
		},
		"required":             []any{"concept", "key_points", "explanation", "exercises"},
		"additionalProperties": false,
	},
}
