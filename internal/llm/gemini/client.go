package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"meetingnotes-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	apiKey string
	model  string
}

// NewClient constructs a new Gemini client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-1.5-flash"
	}
	return &Client{apiKey: apiKey, model: model}, nil
}

// Generate sends one prompt to Gemini and returns the response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: create client: %v", llm.ErrGenerationFailed, err)
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyError(err)
	}

	text := responseText(result)
	if text == "" {
		if blocked(result) {
			return "", llm.ErrContentRejected
		}
		return "", fmt.Errorf("%w: empty response", llm.ErrGenerationFailed)
	}

	logUsage(c.model, result)
	return text, nil
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func blocked(result *genai.GenerateContentResponse) bool {
	if result == nil {
		return false
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return true
	}
	for _, cand := range result.Candidates {
		if cand.FinishReason == genai.FinishReasonSafety || cand.FinishReason == genai.FinishReasonProhibitedContent {
			return true
		}
	}
	return false
}

// classifyError maps provider errors onto the llm sentinel errors by the
// signals Gemini exposes in its error text.
func classifyError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted"):
		return fmt.Errorf("%w: %v", llm.ErrQuotaExceeded, err)
	case strings.Contains(msg, "safety") ||
		strings.Contains(msg, "blocked") ||
		strings.Contains(msg, "prohibited"):
		return fmt.Errorf("%w: %v", llm.ErrContentRejected, err)
	default:
		return fmt.Errorf("%w: %v", llm.ErrGenerationFailed, err)
	}
}

func logUsage(model string, result *genai.GenerateContentResponse) {
	if result == nil || result.UsageMetadata == nil {
		log.Printf("llm response model=%s", model)
		return
	}
	log.Printf("llm response model=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model,
		result.UsageMetadata.PromptTokenCount,
		result.UsageMetadata.CandidatesTokenCount,
		result.UsageMetadata.TotalTokenCount,
	)
}

var _ llm.Client = (*Client)(nil)
