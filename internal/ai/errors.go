// README: Typed provider errors and best-effort extraction of provider messages from opaque error strings.
package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ConfigError reports a missing or unusable provider credential.
type ConfigError struct {
	Provider Provider
	EnvVar   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s not found in environment", e.Provider, e.EnvVar)
}

// HTTPError is a non-2xx response from a provider endpoint. Body holds the
// verbatim response body so callers can surface or parse it.
type HTTPError struct {
	Provider   Provider
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.StatusCode, truncate(e.Body, 200))
}

// APIError is a structured error message successfully extracted from a
// provider payload (either a parsed error body or a message embedded in an
// opaque SDK error string).
type APIError struct {
	Provider   Provider
	Message    string
	StatusCode int
	Raw        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// MessageFromPayload pulls a human-readable message out of the common
// provider error shapes: {"error":{"message":...}}, {"error":"..."} and
// {"message":...}. Returns "" when none match.
func MessageFromPayload(payload map[string]any) string {
	if errField, ok := payload["error"]; ok {
		switch v := errField.(type) {
		case map[string]any:
			if msg, ok := v["message"].(string); ok {
				return msg
			}
		case string:
			return v
		}
	}
	if msg, ok := payload["message"].(string); ok {
		return msg
	}
	return ""
}

// ExtractProviderMessage scans an opaque error string for an embedded,
// possibly single-quote-escaped JSON payload and best-effort parses it.
// It returns the provider's message, the reassembled payload JSON, and the
// status code when one appears as "status_code=NNN" in the string.
// ok is false when no parseable payload was found. This is the single home
// for error-string sniffing; call sites must not re-implement it.
func ExtractProviderMessage(s string) (msg string, raw string, statusCode int, ok bool) {
	statusCode = scanStatusCode(s)

	start := strings.Index(s, "{")
	for start >= 0 {
		candidate, found := balancedObject(s[start:])
		if found {
			cleaned := strings.ReplaceAll(candidate, `\'`, `'`)
			attempts := []string{cleaned}
			if strings.Contains(cleaned, "'") {
				// SDKs embed repr-style payloads with single quotes.
				attempts = append(attempts, strings.ReplaceAll(cleaned, "'", `"`))
			}
			for _, attempt := range attempts {
				var payload map[string]any
				if err := json.Unmarshal([]byte(attempt), &payload); err != nil {
					continue
				}
				if m := MessageFromPayload(payload); m != "" {
					rawBytes, _ := json.Marshal(payload)
					return m, string(rawBytes), statusCode, true
				}
			}
		}
		next := strings.Index(s[start+1:], "{")
		if next < 0 {
			break
		}
		start = start + 1 + next
	}
	return "", "", statusCode, false
}

// balancedObject returns the prefix of s spanning from its leading '{' to
// the matching closing brace, walking brace depth.
func balancedObject(s string) (string, bool) {
	depth := 0
	for i, c := range s {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

func scanStatusCode(s string) int {
	const marker = "status_code="
	idx := strings.Index(s, marker)
	if idx < 0 {
		return 0
	}
	rest := s[idx+len(marker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	code, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return code
}
