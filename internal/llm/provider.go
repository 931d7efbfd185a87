package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the LLM backends the grader and materials
// generator call into. Implementations translate the neutral Request
// into their SDK's shape and normalize the reply back.
type Provider interface {
	// Generate sends a prompt and returns the reply. When the request
	// carries a Schema, the provider uses its native structured output
	// mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one generation call, provider-neutral.
type Request struct {
	// System sets the role and constraints, e.g. the grading rubric.
	System string

	// Messages is the conversation. Grading and materials calls are
	// single-turn: one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the reply must conform to.
	// When nil the Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Grading runs at the
	// zero default so repeat submissions score the same.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "grade-result".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is a normalized reply from any provider.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request. It feeds the
// per-request event log and the cost report.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
