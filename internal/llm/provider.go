package llm

import "context"

// Provider defines the interface for text-generation providers.
// The rest of the application only ever sends a prompt and receives free
// text back - response parsing happens downstream and must tolerate
// formatting drift, so providers do not enforce structured output.
type Provider interface {
	// Generate sends the prompt and returns the raw model text
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string
}

// GenerationRequest contains all parameters needed for one generation call
type GenerationRequest struct {
	Model        string
	SystemPrompt string
	Prompt       string
}

// TokenUsage captures token counts reported by the upstream API
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// GenerationResponse contains the raw text result from the provider
type GenerationResponse struct {
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
}
