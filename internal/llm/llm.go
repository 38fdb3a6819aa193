// Package llm talks to the upstream analysis model that produces raw
// insight payloads. The model's output is treated as untrusted input:
// everything it returns goes through the full safety pipeline before a
// user sees a single word of it.
package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"google.golang.org/genai"
)

const (
	// DefaultModel is the default Gemini model for payload generation.
	DefaultModel = "gemini-2.5-flash-preview-05-20"

	dailyPromptTemplate = `You generate weather-symptom insight data for a consumer app.
Given these conditions: %s

Respond with ONLY a JSON object, no markdown fences, with optional string
fields "summary", "why", "comfort_tip", "sign_off". Keep each field to one
short sentence about how the weather may relate to symptom risk.`

	weeklyPromptTemplate = `You generate weather-symptom insight data for a consumer app.
Given this 7-day outlook: %s

Respond with ONLY a JSON object, no markdown fences, with a string field
"weekly_summary" (one sentence) and "daily_breakdown": a list of seven
{"label", "insight"} objects, one per day starting tomorrow.`
)

// Client wraps the Gemini SDK for payload generation.
type Client struct {
	modelName string
	gClient   *genai.Client
}

// NewClient creates a new LLM client. The API key comes from the
// GEMINI_API_KEY environment variable or ai.gemini.api_key in config.
func NewClient(modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("ai.gemini.api_key")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required: set GEMINI_API_KEY or ai.gemini.api_key in config")
	}

	if modelName == "" {
		modelName = viper.GetString("ai.gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}

	gClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{modelName: modelName, gClient: gClient}, nil
}

// GenerateDailyPayload asks the model for a raw daily insight payload
// describing conditions. The returned string is raw pipeline input,
// not display text.
func (c *Client) GenerateDailyPayload(ctx context.Context, conditions string) (string, error) {
	return c.generateContent(ctx, fmt.Sprintf(dailyPromptTemplate, conditions))
}

// GenerateWeeklyPayload asks the model for a raw weekly insight payload
// describing outlook.
func (c *Client) GenerateWeeklyPayload(ctx context.Context, outlook string) (string, error) {
	return c.generateContent(ctx, fmt.Sprintf(weeklyPromptTemplate, outlook))
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	config := &genai.GenerateContentConfig{}
	if maxTokens := viper.GetInt32("ai.gemini.max_tokens"); maxTokens > 0 {
		config.MaxOutputTokens = maxTokens
	}
	if temp := float32(viper.GetFloat64("ai.gemini.temperature")); temp > 0 {
		config.Temperature = &temp
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
