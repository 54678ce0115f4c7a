package analyzer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/denisAlshanov/clipgrab/internal/config"
)

// Generator produces a JSON completion for a prompt.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// qualitySchema constrains the model output to {platform, qualities[]}.
var qualitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"platform": {
			Type:        genai.TypeString,
			Description: "The platform where the video is hosted, e.g. YouTube or Instagram.",
		},
		"qualities": {
			Type:        genai.TypeArray,
			Description: "Available video quality options, e.g. 1080p, 720p, 360p.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"platform", "qualities"},
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
	cfg    config.GeminiConfig
}

func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  cfg.Model,
		cfg:    cfg,
	}, nil
}

func (g *GeminiGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   qualitySchema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no content from gemini")
	}
	return text, nil
}
