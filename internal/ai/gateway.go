// README: Gateway constructs a ChatClient per provider, resolving keys and default models from env.
package ai

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Hardcoded fallback models, used when neither an explicit model nor the
// provider's default-model env var is set.
const (
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultOpenRouterModel = "openai/gpt-3.5-turbo"
	defaultGroqModel       = "llama3-8b-8192"
	defaultTogetherModel   = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	groqBaseURL       = "https://api.groq.com/openai/v1"
	togetherBaseURL   = "https://api.together.xyz/v1"
)

// Gateway builds provider clients. Constructing a client performs no
// network call; the first request happens inside Complete.
type Gateway struct {
	log *zap.Logger
}

func NewGateway(log *zap.Logger) *Gateway {
	return &Gateway{log: log}
}

// GetClient resolves credentials and model for the named provider and
// returns the matching adapter. A missing API key yields *ConfigError.
func (g *Gateway) GetClient(provider Provider, opts Options) (ChatClient, error) {
	switch provider {
	case ProviderGemini:
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, &ConfigError{Provider: provider, EnvVar: "GOOGLE_API_KEY"}
		}
		model := resolveModel(opts.Model, "GOOGLE_DEFAULT_MODEL", defaultGeminiModel)
		g.logClient(provider, model, opts)
		return newGeminiClient(apiKey, model, opts), nil

	case ProviderOpenRouter:
		apiKey := os.Getenv("OPENROUTER_API_KEY")
		if apiKey == "" {
			return nil, &ConfigError{Provider: provider, EnvVar: "OPENROUTER_API_KEY"}
		}
		model := resolveModel(opts.Model, "OPENROUTER_DEFAULT_MODEL", defaultOpenRouterModel)
		// OpenRouter requires attribution headers on every request.
		headers := map[string]string{
			"HTTP-Referer": envOr("OPENROUTER_HTTP_REFERER", "http://localhost:3000"),
			"X-Title":      envOr("OPENROUTER_APP_TITLE", "AI Travel Quotation"),
		}
		g.logClient(provider, model, opts)
		return newOpenAIClient(provider, openRouterBaseURL, apiKey, model, headers, opts), nil

	case ProviderGroq:
		apiKey := os.Getenv("GROQ_API_KEY")
		if apiKey == "" {
			return nil, &ConfigError{Provider: provider, EnvVar: "GROQ_API_KEY"}
		}
		model := resolveModel(opts.Model, "GROQ_DEFAULT_MODEL", defaultGroqModel)
		g.logClient(provider, model, opts)
		return newOpenAIClient(provider, groqBaseURL, apiKey, model, nil, opts), nil

	case ProviderTogetherAI:
		apiKey := os.Getenv("TOGETHERAI_API_KEY")
		if apiKey == "" {
			return nil, &ConfigError{Provider: provider, EnvVar: "TOGETHERAI_API_KEY"}
		}
		model := resolveModel(opts.Model, "TOGETHERAI_DEFAULT_MODEL", defaultTogetherModel)
		g.logClient(provider, model, opts)
		return newOpenAIClient(provider, togetherBaseURL, apiKey, model, nil, opts), nil

	default:
		return nil, fmt.Errorf("unsupported AI provider: %q (supported: Gemini, OpenRouter, Groq, TogetherAI)", provider)
	}
}

func (g *Gateway) logClient(provider Provider, model string, opts Options) {
	if g.log == nil {
		return
	}
	g.log.Debug("ai client constructed",
		zap.String("provider", string(provider)),
		zap.String("model", model),
		zap.Float64("temperature", opts.Temperature),
		zap.Int("max_tokens", opts.MaxTokens),
		zap.Bool("json_mode", opts.JSONMode),
	)
}

func resolveModel(explicit, envKey, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
