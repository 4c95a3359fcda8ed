// README: Maps provider/client errors onto error envelopes.
package quotation

import (
	"encoding/json"
	"errors"
	"fmt"

	"tripquote/internal/ai"
)

// ClassifyAIError converts an error returned by a ChatClient (or the
// gateway) into an envelope. stage names the pipeline step for the Details
// field, e.g. "vendor reply parsing".
func ClassifyAIError(provider ai.Provider, stage string, err error) *Envelope {
	var cfgErr *ai.ConfigError
	if errors.As(err, &cfgErr) {
		return &Envelope{
			Message: cfgErr.Error(),
			Details: fmt.Sprintf("Set %s in the environment to use %s.", cfgErr.EnvVar, cfgErr.Provider),
			Type:    TypeConfigurationError,
		}
	}

	var httpErr *ai.HTTPError
	if errors.As(err, &httpErr) {
		msg := fmt.Sprintf("%s returned HTTP %d during %s", httpErr.Provider, httpErr.StatusCode, stage)
		var payload map[string]any
		if json.Unmarshal([]byte(httpErr.Body), &payload) == nil {
			if m := ai.MessageFromPayload(payload); m != "" {
				msg = m
			}
		}
		return &Envelope{
			Message:    msg,
			Details:    fmt.Sprintf("Provider: %s, stage: %s", httpErr.Provider, stage),
			RawOutput:  httpErr.Body,
			Type:       TypeHTTPError,
			StatusCode: httpErr.StatusCode,
		}
	}

	var apiErr *ai.APIError
	if errors.As(err, &apiErr) {
		return &Envelope{
			Message:    apiErr.Message,
			Details:    fmt.Sprintf("Provider: %s, stage: %s", apiErr.Provider, stage),
			RawOutput:  apiErr.Raw,
			Type:       TypeProviderAPIError,
			StatusCode: apiErr.StatusCode,
		}
	}

	// Opaque SDK errors sometimes carry a provider payload inside the
	// message string. One extraction attempt, then give up gracefully.
	if msg, raw, status, ok := ai.ExtractProviderMessage(err.Error()); ok {
		return &Envelope{
			Message:    msg,
			Details:    fmt.Sprintf("Provider: %s, stage: %s", provider, stage),
			RawOutput:  raw,
			Type:       TypeProviderAPIError,
			StatusCode: status,
		}
	}

	return &Envelope{
		Message: err.Error(),
		Details: fmt.Sprintf("Unexpected error from %s during %s", provider, stage),
		Type:    TypeGenericError,
	}
}
