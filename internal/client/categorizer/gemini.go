package categorizer

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/dmitrijs2005/accountbutler/internal/logging"
)

const DefaultModel = "gemini-2.0-flash"

// resultSchema constrains the model to a JSON object with exactly the two
// fields the contract requires.
var resultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"category":   {Type: genai.TypeString},
		"confidence": {Type: genai.TypeNumber},
	},
	Required: []string{"category", "confidence"},
}

// GeminiCategorizer calls the hosted Gemini API. The call is synchronous
// from the caller's perspective and bounded by a per-call timeout.
type GeminiCategorizer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     logging.Logger
}

// NewGeminiCategorizer builds a client for the given API key. Model falls
// back to DefaultModel when empty; timeout must be positive.
func NewGeminiCategorizer(ctx context.Context, apiKey, model string, timeout time.Duration, log logging.Logger) (*GeminiCategorizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("categorize timeout must be positive")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiCategorizer{
		client:  client,
		model:   model,
		timeout: timeout,
		log:     log.With("component", "categorizer"),
	}, nil
}

// Categorize sends the templated prompt and parses the structured reply.
// Every failure mode is reported as ErrCategorization.
func (c *GeminiCategorizer) Categorize(ctx context.Context, name, description string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(BuildPrompt(name, description), genai.RoleUser),
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   resultSchema,
		Temperature:      genai.Ptr[float32](0.2),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCategorization, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrCategorization)
	}

	result, err := ParseResult([]byte(text))
	if err != nil {
		return nil, err
	}

	c.log.Debug(ctx, "account categorized",
		"category", result.Category,
		"confidence", result.Confidence,
		"elapsed", time.Since(start))

	return result, nil
}
