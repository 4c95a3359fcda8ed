// README: Gemini adapter via Google's official genai SDK.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// geminiRequestTimeout mirrors the 120s request timeout the Gemini
// integration has always carried; other providers rely on their HTTP
// client timeout instead.
const geminiRequestTimeout = 120 * time.Second

type geminiClient struct {
	apiKey string
	model  string
	opts   Options
}

func newGeminiClient(apiKey, model string, opts Options) *geminiClient {
	return &geminiClient{apiKey: apiKey, model: model, opts: opts}
}

func (c *geminiClient) Complete(ctx context.Context, promptTemplate string, vars map[string]string) (string, error) {
	prompt := RenderPrompt(promptTemplate, vars)

	ctx, cancel := context.WithTimeout(ctx, geminiRequestTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SetTemperature(float32(c.opts.Temperature))
	if c.opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(c.opts.MaxTokens))
	}
	if c.opts.JSONMode {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return "", &HTTPError{Provider: ProviderGemini, StatusCode: gerr.Code, Body: gerr.Body}
		}
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}

	return strings.Join(textParts, "\n"), nil
}
