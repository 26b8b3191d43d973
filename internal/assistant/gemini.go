package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiConfig holds configuration for the Gemini asker.
type GeminiConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Gemini implements Asker using the Google Generative AI SDK.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a client for cfg.Model. The caller owns Close.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required for gemini")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required for gemini")
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("max_tokens must be positive for gemini")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	maxTokens := int32(cfg.MaxTokens)
	model.MaxOutputTokens = &maxTokens

	return &Gemini{client: client, model: model}, nil
}

// Ask sends question as a single-turn prompt.
func (g *Gemini) Ask(ctx context.Context, question string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return answerText(resp)
}

// Close closes the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// answerText joins the text parts of the first candidate.
func answerText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyAnswer
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", ErrEmptyAnswer
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if b.Len() == 0 {
		return "", ErrEmptyAnswer
	}
	return b.String(), nil
}
