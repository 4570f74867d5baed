package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider extracts locations from free text using Google's Gemini
// models. It backs the optional last tier of the extraction chain.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Flash keeps the latency of a miss tier acceptable.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Extraction is not a creative task.
	model.SetTemperature(0.1)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

const locationPrompt = `You extract place names from travel-assistant queries.
Given the user message, identify the single city, region or country the user
is asking about, if any.

Rules:
- Return only places the message actually mentions. Never invent one.
- Prefer the place the user wants information about over places used as
  asides ("flying from London to Rome" -> "Rome").
- If no place is mentioned, return an empty location.

Output JSON Schema:
{
  "location": "string (empty when no place is mentioned)",
  "confidence": number (0 to 1)
}

User Message: %s`

// ParseLocation asks the model for the place name a message refers to.
// An empty result with a nil error means the model found no location.
func (p *GeminiProvider) ParseLocation(ctx context.Context, text string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(locationPrompt, text)))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	cleanJSON := cleanJSONString(responseText.String())

	var result LocationResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return strings.TrimSpace(result.Location), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
