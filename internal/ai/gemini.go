package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/srikar0313/TechPulse/internal/news"
)

// geminiProvider calls the generateContent endpoint with a response
// schema so the model is constrained to the article shape.
type geminiProvider struct {
	apiKey    string
	model     string
	batchSize int
	client    *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiSchema struct {
	Type        string                   `json:"type"`
	Description string                   `json:"description,omitempty"`
	Items       *geminiSchema            `json:"items,omitempty"`
	Properties  map[string]*geminiSchema `json:"properties,omitempty"`
	Required    []string                 `json:"required,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func articleSchema() *geminiSchema {
	return &geminiSchema{
		Type: "ARRAY",
		Items: &geminiSchema{
			Type: "OBJECT",
			Properties: map[string]*geminiSchema{
				"title":       {Type: "STRING", Description: "The headline of the article."},
				"image":       {Type: "STRING", Description: "A URL to a relevant image for the article."},
				"source":      {Type: "STRING", Description: "The name of the news source, e.g., TechCrunch, The Verge."},
				"description": {Type: "STRING", Description: "A short summary of the article, between 100 and 150 words."},
				"publishedAt": {Type: "STRING", Description: "The publication date in ISO 8601 format."},
				"link":        {Type: "STRING", Description: "The direct URL to the original article."},
				"category": {
					Type:        "STRING",
					Description: "The category of the article. Must be one of: " + strings.Join(news.Categories(), ", ") + ".",
				},
			},
			Required: []string{"title", "image", "source", "description", "publishedAt", "link", "category"},
		},
	}
}

func (g *geminiProvider) Generate(ctx context.Context) ([]news.Raw, error) {
	body, _ := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(g.batchSize)}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   articleSchema(),
		},
	})

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("gemini API %d: %s", resp.StatusCode, string(b))
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty gemini response")
	}
	return decodeBatch(gr.Candidates[0].Content.Parts[0].Text)
}
