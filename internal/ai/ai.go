// Package ai generates the mock news batches. There is no real news
// source behind the dashboard: every refresh asks a generative model
// for a fresh batch of articles matching a fixed JSON schema.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/srikar0313/TechPulse/internal/config"
	"github.com/srikar0313/TechPulse/internal/news"
)

// Generator produces one raw article batch per call.
type Generator interface {
	Generate(ctx context.Context) ([]news.Raw, error)
}

// New creates a Generator from the loaded config.
func New(cfg *config.Config) (Generator, error) {
	apiKey := cfg.AIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured (set ai.api_key or TECHPULSE_AI_KEY)")
	}

	var model string
	if cfg.AI != nil {
		model = cfg.AI.Model
	}
	batchSize := cfg.GetBatchSize()
	client := &http.Client{Timeout: 60 * time.Second}

	switch cfg.Provider() {
	case "gemini":
		if model == "" {
			model = "gemini-2.5-flash"
		}
		return &geminiProvider{apiKey: apiKey, model: model, batchSize: batchSize, client: client}, nil
	case "openai":
		if model == "" {
			model = "gpt-4o-mini"
		}
		return newOpenAIProvider(apiKey, model, batchSize), nil
	case "claude":
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeProvider{apiKey: apiKey, model: model, batchSize: batchSize, client: client}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: gemini, openai, claude)", cfg.Provider())
	}
}

const newsPrompt = `Act as a tech news aggregator. Generate a JSON array of %d recent and compelling tech news articles.
Ensure the articles are diverse and cover the following categories: %s.
The sources should be reputable, like TechCrunch, The Verge, Wired, Engadget, and Ars Technica.
Each article must have a unique title, a valid image URL, a source name, a descriptive summary (100-150 words), a publication date in ISO 8601 format, a URL to the original article, and an appropriate category from the provided list.
Generate fresh and different content each time this prompt is called.
Respond with ONLY the JSON array, no markdown fences or commentary.`

func buildPrompt(batchSize int) string {
	return fmt.Sprintf(newsPrompt, batchSize, strings.Join(news.Categories(), ", "))
}

// decodeBatch parses the model's text output as a JSON article array.
// Models occasionally wrap JSON in markdown fences despite
// instructions, so those are stripped first.
func decodeBatch(text string) ([]news.Raw, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var raws []news.Raw
	if err := json.Unmarshal([]byte(text), &raws); err != nil {
		return nil, fmt.Errorf("response is not a JSON article array: %w", err)
	}
	return raws, nil
}
