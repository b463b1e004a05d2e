package ai

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// Streamer yields text fragments of a completion in arrival order
type Streamer interface {
	Stream(ctx context.Context, message string) iter.Seq2[string, error]
}

type GeminiClient struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		config: GenerationConfig(),
	}, nil
}

// GenerationConfig is the fixed sampling setup used for every chat turn
func GenerationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](2),
		TopP:             genai.Ptr[float32](0.95),
		TopK:             genai.Ptr[float32](40),
		MaxOutputTokens:  8192,
		ResponseMIMEType: "text/plain",
	}
}

// Stream sends message as a single user turn with no history
func (c *GeminiClient) Stream(ctx context.Context, message string) iter.Seq2[string, error] {
	contents := []*genai.Content{
		genai.NewContentFromText(message, genai.RoleUser),
	}

	return func(yield func(string, error) bool) {
		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, contents, c.config) {
			if err != nil {
				yield("", fmt.Errorf("gemini stream: %w", err))
				return
			}
			if !yield(resp.Text(), nil) {
				return
			}
		}
	}
}
