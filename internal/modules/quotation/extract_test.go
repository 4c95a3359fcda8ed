package quotation

import (
	"strings"
	"testing"
)

func TestExtractJSONObjectFencedBlock(t *testing.T) {
	raw := "Here is your quotation:\n```json\n{\"client_name\": \"Mr./Ms. Priya\"}\n```\nLet me know if you need changes."
	got, err := ExtractJSONObject(raw)
	if err != nil {
		t.Fatalf("ExtractJSONObject: %v", err)
	}
	if got != `{"client_name": "Mr./Ms. Priya"}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractJSONObjectBraceWalk(t *testing.T) {
	raw := `Sure! The data {"a": {"b": 2}, "c": "x"} should work. Ping me {anytime}.`
	got, err := ExtractJSONObject(raw)
	if err != nil {
		t.Fatalf("ExtractJSONObject: %v", err)
	}
	if got != `{"a": {"b": 2}, "c": "x"}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractJSONObjectNoObject(t *testing.T) {
	if _, err := ExtractJSONObject("no structured content here"); err == nil {
		t.Fatal("expected an error for output without an object")
	}
}

func TestExtractJSONObjectUnbalanced(t *testing.T) {
	if _, err := ExtractJSONObject(`prefix {"a": 1`); err == nil {
		t.Fatal("expected an error for an unbalanced object")
	}
}

func TestDecodeStructuredCoercions(t *testing.T) {
	jsonText := `{
		"client_name": "Mr./Ms. Valued Client",
		"inclusions": "Daily breakfast",
		"exclusions": ["Airfare", 42],
		"detailed_itinerary": [
			{"day_number": 1, "title": "Arrival", "description": "Check in."}
		],
		"hotel_details": [
			{"destination_location": "Goa", "hotel_name": "Seaside Resort", "nights": 3}
		]
	}`
	s, err := DecodeStructured(jsonText)
	if err != nil {
		t.Fatalf("DecodeStructured: %v", err)
	}
	if len(s.Inclusions) != 1 || s.Inclusions[0] != "Daily breakfast" {
		t.Fatalf("inclusions = %v", s.Inclusions)
	}
	if len(s.Exclusions) != 2 || s.Exclusions[1] != "42" {
		t.Fatalf("exclusions = %v", s.Exclusions)
	}
	if s.DetailedItinerary[0].DayNumber != "1" {
		t.Fatalf("day_number = %q", s.DetailedItinerary[0].DayNumber)
	}
	if s.HotelDetails[0].Nights != "3" {
		t.Fatalf("nights = %q", s.HotelDetails[0].Nights)
	}
}

func TestDecodeStructuredInvalidJSON(t *testing.T) {
	if _, err := DecodeStructured(`{"client_name": }`); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestNormalizeItineraryPadsAndRenumbers(t *testing.T) {
	days := []ItineraryDay{
		{DayNumber: "Day One", Title: "Arrival", Description: "Land and check in."},
		{DayNumber: "2", Title: "City Tour", Description: "Old town walk."},
	}
	out := NormalizeItinerary(days, 5, "Lisbon", true)
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
	for i, day := range out {
		want := "Day " + string(rune('1'+i))
		if day.DayNumber != want {
			t.Fatalf("day %d numbered %q, want %q", i, day.DayNumber, want)
		}
		if day.Title == "" || day.Description == "" {
			t.Fatalf("day %d has empty fields: %+v", i, day)
		}
	}
	if out[0].Title != "Arrival" {
		t.Fatalf("existing day lost: %+v", out[0])
	}
}

func TestNormalizeItineraryTruncates(t *testing.T) {
	days := make([]ItineraryDay, 7)
	for i := range days {
		days[i] = ItineraryDay{Title: "T", Description: "D"}
	}
	out := NormalizeItinerary(days, 3, "Rome", true)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
}

func TestNormalizeItinerarySynthesizedNote(t *testing.T) {
	out := NormalizeItinerary(nil, 2, "Bali", false)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if !strings.Contains(out[0].Description, "suggested itinerary") {
		t.Fatalf("day 1 missing customization note: %q", out[0].Description)
	}
	if strings.Contains(out[1].Description, "suggested itinerary") {
		t.Fatalf("note duplicated onto day 2: %q", out[1].Description)
	}
}

func TestVendorProvidedItinerary(t *testing.T) {
	if VendorProvidedItinerary("1. Proposed Itinerary: Itinerary not specified by vendor.") {
		t.Fatal("not-specified literal should read as no itinerary")
	}
	if !VendorProvidedItinerary("1. Proposed Itinerary: Day 1 arrival, Day 2 tour.") {
		t.Fatal("real itinerary should read as provided")
	}
}
