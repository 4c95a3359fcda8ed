// README: Shared adapter for the OpenAI-compatible providers (OpenRouter, Groq, TogetherAI).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// httpClient is shared by every OpenAI-compatible request; the timeout
// guards against stalled connections while context cancellation is still
// honoured via NewRequestWithContext.
var httpClient = &http.Client{Timeout: 120 * time.Second}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type openAIClient struct {
	provider Provider
	baseURL  string
	apiKey   string
	model    string
	headers  map[string]string
	opts     Options
}

func newOpenAIClient(provider Provider, baseURL, apiKey, model string, headers map[string]string, opts Options) *openAIClient {
	return &openAIClient{
		provider: provider,
		baseURL:  baseURL,
		apiKey:   apiKey,
		model:    model,
		headers:  headers,
		opts:     opts,
	}
}

// supportsNativeJSON reports whether this provider/model pair honours the
// response_format json_object flag. Only OpenRouter-routed GPT and Claude 3
// models are known to; the rest fall back to free text plus recovery.
func (c *openAIClient) supportsNativeJSON() bool {
	if c.provider != ProviderOpenRouter {
		return false
	}
	m := strings.ToLower(c.model)
	return strings.Contains(m, "gpt") || strings.Contains(m, "claude-3")
}

func (c *openAIClient) Complete(ctx context.Context, promptTemplate string, vars map[string]string) (string, error) {
	prompt := RenderPrompt(promptTemplate, vars)

	req := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	}
	if c.opts.JSONMode && c.supportsNativeJSON() {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%s: marshal request: %w", c.provider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", c.provider, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s: do request: %w", c.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", c.provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{Provider: c.provider, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("%s: unmarshal response: %w", c.provider, err)
	}
	if cr.Error != nil {
		return "", &APIError{Provider: c.provider, Message: cr.Error.Message, Raw: string(body)}
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%s: API returned empty choices array (raw: %s)", c.provider, body)
	}
	return cr.Choices[0].Message.Content, nil
}
