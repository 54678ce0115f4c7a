// Package analyzer guesses the hosting platform and the offered quality
// labels for a video URL. The result is advisory and never drives
// resolution.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

var promptTemplate = template.Must(template.New("quality").Parse(`You identify video hosting platforms and the video quality options they offer.

Look at the URL below. Name the platform that hosts the video and list the quality options that are available for it. When the options cannot be read from the URL itself, use what is publicly known about the platform to give the most likely options.

URL: {{.URL}}

Answer with a JSON object only, for example:
{"platform": "YouTube", "qualities": ["1080p", "720p", "360p"]}
`))

type Analyzer struct {
	generator Generator
}

// NewAnalyzer accepts a nil generator; Analyze then reports a
// configuration error instead of calling out.
func NewAnalyzer(generator Generator) *Analyzer {
	return &Analyzer{generator: generator}
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*models.QualityAnalysis, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, utils.NewValidationError("A video URL is required", map[string]interface{}{"field": "url"})
	}
	if a.generator == nil {
		return nil, utils.NewConfigurationError("Quality analysis is not configured. Please set GEMINI_API_KEY in your .env file.")
	}

	prompt, err := buildPrompt(url)
	if err != nil {
		return nil, utils.NewAnalysisError(err)
	}

	text, err := a.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		utils.LogError(ctx, "Quality analysis request failed", err, utils.Fields{"url": url})
		return nil, utils.NewAnalysisError(err)
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		utils.LogWarn(ctx, "Quality analysis returned unusable output", utils.Fields{
			"url":    url,
			"output": truncate(text, 500),
			"error":  err.Error(),
		})
		return nil, utils.NewAnalysisError(err)
	}

	utils.LogInfo(ctx, "Video URL analyzed", utils.Fields{
		"platform":  analysis.Platform,
		"qualities": len(analysis.Qualities),
	})
	return analysis, nil
}

// PreferredQuality picks the initial selection from a quality list: 720p
// when offered, else the first entry, else Auto.
func PreferredQuality(qualities []string) string {
	for _, q := range qualities {
		if q == "720p" {
			return q
		}
	}
	if len(qualities) > 0 {
		return qualities[0]
	}
	return models.QualityAuto
}

func buildPrompt(url string) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, struct{ URL string }{URL: url}); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// parseAnalysis decodes model output into a QualityAnalysis. Markdown code
// fences and text around the JSON object are tolerated; a missing platform
// or qualities field is a schema mismatch.
func parseAnalysis(text string) (*models.QualityAnalysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	var raw struct {
		Platform  *string  `json:"platform"`
		Qualities []string `json:"qualities"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("could not parse analysis output: %w", err)
	}
	if raw.Platform == nil || strings.TrimSpace(*raw.Platform) == "" {
		return nil, fmt.Errorf("analysis output has no platform")
	}
	if raw.Qualities == nil {
		return nil, fmt.Errorf("analysis output has no qualities")
	}

	seen := make(map[string]bool, len(raw.Qualities))
	qualities := make([]string, 0, len(raw.Qualities))
	for _, q := range raw.Qualities {
		q = strings.TrimSpace(q)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		qualities = append(qualities, q)
	}

	return &models.QualityAnalysis{
		Platform:  strings.TrimSpace(*raw.Platform),
		Qualities: qualities,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
