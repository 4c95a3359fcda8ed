package ai

import (
	"strings"
	"testing"
)

func TestRenderPromptSubstitutesSlots(t *testing.T) {
	out := RenderPrompt("Trip to {destination} for {num_days} days", map[string]string{
		"destination": "Goa",
		"num_days":    "5",
	})
	if out != "Trip to Goa for 5 days" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderPromptLeavesUnknownBraces(t *testing.T) {
	out := RenderPrompt(`{"key": "value", "dest": "{destination}"}`, map[string]string{
		"destination": "Goa",
	})
	if out != `{"key": "value", "dest": "Goa"}` {
		t.Fatalf("got %q", out)
	}
}

func TestStructurePromptKeepsSchemaBraces(t *testing.T) {
	out := RenderPrompt(QuotationStructurePrompt, map[string]string{
		"destination":                 "Goa",
		"num_days":                    "5",
		"num_nights":                  "4",
		"traveler_count":              "2",
		"trip_type":                   "Leisure",
		"client_name_placeholder":     "Mr./Ms. Priya",
		"vendor_parsed_text":          "parsed",
		"ai_suggested_itinerary_text": "suggestions",
	})
	if strings.Contains(out, "{destination}") || strings.Contains(out, "{vendor_parsed_text}") {
		t.Fatal("slots left unfilled")
	}
	if !strings.Contains(out, `"detailed_itinerary": [`) {
		t.Fatal("schema example lost from prompt")
	}
	if !strings.Contains(out, "Mr./Ms. Priya") {
		t.Fatal("client placeholder not substituted")
	}
}

func TestProviderValid(t *testing.T) {
	for _, p := range Providers {
		if !p.Valid() {
			t.Fatalf("%s should be valid", p)
		}
	}
	if Provider("Mistral").Valid() {
		t.Fatal("unknown provider must be invalid")
	}
}
