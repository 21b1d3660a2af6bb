package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Completion parameters for the auction assistant.
const (
	completionTemperature     = 0.5
	completionMaxOutputTokens = 500
)

// GenAIClient is a Completer backed by the Gemini API.
type GenAIClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient creates a new Gemini-backed completion client
func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("genai: failed to create client: %w", err)
	}

	return &GenAIClient{client: client, model: model}, nil
}

// Complete sends the system prompt and full history to the model and
// returns the assistant text.
func (c *GenAIClient) Complete(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.Role(genai.RoleUser)
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](completionTemperature),
		MaxOutputTokens:   completionMaxOutputTokens,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("genai: generate content failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("genai: empty completion")
	}
	return text, nil
}
