package ai

import "testing"

func TestExtractProviderMessage(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		wantMsg    string
		wantStatus int
		wantOK     bool
	}{
		{
			name:       "json payload with status code",
			in:         `request failed with status_code=429, body={"error":{"message":"rate limit reached"}}`,
			wantMsg:    "rate limit reached",
			wantStatus: 429,
			wantOK:     true,
		},
		{
			name:    "repr payload with single quotes",
			in:      "Error code: 400 - {'error': {'message': 'invalid model'}}",
			wantMsg: "invalid model",
			wantOK:  true,
		},
		{
			name:    "escaped single quotes",
			in:      `body={"error":{"message":"model \'x\' not found"}}`,
			wantMsg: "model 'x' not found",
			wantOK:  true,
		},
		{
			name:    "flat error string field",
			in:      `{"error": "something broke"}`,
			wantMsg: "something broke",
			wantOK:  true,
		},
		{
			name:   "no payload at all",
			in:     "connection reset by peer",
			wantOK: false,
		},
		{
			name:   "braces without json",
			in:     "template {slot} was not filled",
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, raw, status, ok := ExtractProviderMessage(tc.in)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if msg != tc.wantMsg {
				t.Fatalf("msg = %q, want %q", msg, tc.wantMsg)
			}
			if status != tc.wantStatus {
				t.Fatalf("status = %d, want %d", status, tc.wantStatus)
			}
			if raw == "" {
				t.Fatal("raw payload missing")
			}
		})
	}
}

func TestMessageFromPayload(t *testing.T) {
	if got := MessageFromPayload(map[string]any{"error": map[string]any{"message": "m"}}); got != "m" {
		t.Fatalf("nested message = %q", got)
	}
	if got := MessageFromPayload(map[string]any{"message": "top"}); got != "top" {
		t.Fatalf("top-level message = %q", got)
	}
	if got := MessageFromPayload(map[string]any{"other": 1}); got != "" {
		t.Fatalf("unexpected message %q", got)
	}
}
