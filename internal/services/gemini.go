package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiService produces the text embeddings behind semantic similarity and
// the learned-model feature vector. It satisfies the scoring engine's
// Encoder interface.
type GeminiService interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client     *genai.Client
	embedModel string
}

func NewGeminiService(apiKey string) (GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}

	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		embedModel: "text-embedding-004",
	}, nil
}

// Encode implements GeminiService.
func (g *geminiService) Encode(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
