// README: Provider gateway contract; adapters for each LLM backend implement ChatClient.
package ai

import "context"

// Provider identifies an LLM backend.
type Provider string

const (
	ProviderGemini     Provider = "Gemini"
	ProviderOpenRouter Provider = "OpenRouter"
	ProviderGroq       Provider = "Groq"
	ProviderTogetherAI Provider = "TogetherAI"
)

// Providers lists every supported backend, in UI display order.
var Providers = []Provider{ProviderGemini, ProviderOpenRouter, ProviderGroq, ProviderTogetherAI}

// Valid reports whether p names a supported backend.
func (p Provider) Valid() bool {
	for _, known := range Providers {
		if p == known {
			return true
		}
	}
	return false
}

// Options carries per-client generation settings. The gateway translates
// these into each provider's native parameter names, so callers never need
// to know that Gemini wants max_output_tokens while the OpenAI-compatible
// backends want a flat max_tokens field.
type Options struct {
	// Model overrides the provider default. Empty falls back to the
	// provider's default-model env var, then a hardcoded constant.
	Model       string
	Temperature float64
	// MaxTokens caps the response length; zero means provider default.
	MaxTokens int
	// JSONMode requests native JSON output where the provider/model pair
	// supports it. Unsupported pairs silently ignore it; callers recover
	// JSON from free text instead.
	JSONMode bool
}

// ChatClient is the single operation every adapter exposes: render the
// prompt template with the given variables and return the model's text.
// Synchronous and blocking; the context bounds the request.
type ChatClient interface {
	Complete(ctx context.Context, promptTemplate string, vars map[string]string) (string, error)
}
