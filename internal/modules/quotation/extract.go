// README: JSON recovery from model output, field sanitization, and itinerary completeness normalization.
package quotation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedJSONRe = regexp.MustCompile("```json\\s*([\\s\\S]*?)```")

// ExtractJSONObject recovers a JSON object from raw model output. It tries
// a ```json fenced block first, then walks brace depth from the first '{'.
// The returned string is the candidate object text, not yet validated.
func ExtractJSONObject(raw string) (string, error) {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	start := strings.Index(raw, "{")
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in output")
	}
	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object in output")
}

// Fields the schema declares as lists of strings. Models occasionally emit
// them as a single string or a list of objects; sanitize coerces both.
var listStringFields = []string{
	"inclusions",
	"exclusions",
	"standard_exclusions_list",
	"important_notes",
}

// DecodeStructured parses candidate JSON text into a Structured document,
// coercing near-miss shapes (numbers for strings, single string for a
// list) instead of failing on them.
func DecodeStructured(jsonText string) (*Structured, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, err
	}
	sanitize(payload)

	cleaned, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var s Structured
	if err := json.Unmarshal(cleaned, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func sanitize(payload map[string]any) {
	for _, field := range listStringFields {
		v, ok := payload[field]
		if !ok || v == nil {
			continue
		}
		switch items := v.(type) {
		case []any:
			out := make([]any, 0, len(items))
			for _, item := range items {
				out = append(out, coerceString(item))
			}
			payload[field] = out
		default:
			payload[field] = []any{coerceString(v)}
		}
	}

	if days, ok := payload["detailed_itinerary"].([]any); ok {
		for _, d := range days {
			if day, ok := d.(map[string]any); ok {
				for k, v := range day {
					day[k] = coerceString(v)
				}
			}
		}
	}
	if hotels, ok := payload["hotel_details"].([]any); ok {
		for _, h := range hotels {
			if hotel, ok := h.(map[string]any); ok {
				for k, v := range hotel {
					hotel[k] = coerceString(v)
				}
			}
		}
	}
}

// coerceString flattens a leaf value to a string. Numbers lose a trailing
// ".0" so a model emitting nights: 3 round-trips as "3".
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

const synthesizedItineraryNote = "(Please note: This is a suggested itinerary based on popular activities. We can customize it further to your preferences.)"

// NormalizeItinerary forces the day-wise plan to exactly numDays entries
// numbered "Day 1".."Day N". Models are asked to do this themselves but
// drift on longer trips; enforcing it here keeps the renderer trivial.
// Extra days are dropped, missing days are padded with generic leisure
// days, and when the whole plan had to be synthesized the first day gets
// a customization note.
func NormalizeItinerary(days []ItineraryDay, numDays int, destination string, vendorHadItinerary bool) []ItineraryDay {
	if numDays <= 0 {
		return days
	}
	out := make([]ItineraryDay, 0, numDays)
	for i := 0; i < numDays && i < len(days); i++ {
		out = append(out, days[i])
	}
	for len(out) < numDays {
		n := len(out) + 1
		out = append(out, ItineraryDay{
			DayNumber: fmt.Sprintf("Day %d", n),
			Title:     fmt.Sprintf("Exploring %s at Leisure", destination),
			Description: fmt.Sprintf("Enjoy a relaxed day in %s. Explore local markets, sample regional cuisine, or revisit a favorite spot from earlier in the trip. Your driver remains at your disposal for any sightseeing you wish to add. Overnight stay at your hotel.", destination),
		})
	}
	for i := range out {
		out[i].DayNumber = fmt.Sprintf("Day %d", i+1)
		if out[i].Title == "" {
			out[i].Title = fmt.Sprintf("Day %d in %s", i+1, destination)
		}
	}
	if !vendorHadItinerary && len(out) > 0 && !strings.Contains(out[0].Description, synthesizedItineraryNote) {
		out[0].Description = strings.TrimSpace(out[0].Description + " " + synthesizedItineraryNote)
	}
	return out
}

// VendorProvidedItinerary reports whether the parsed vendor text carries any
// itinerary, by checking for the parser's "not specified" literal.
func VendorProvidedItinerary(parsedVendorText string) bool {
	return !strings.Contains(parsedVendorText, "Itinerary not specified by vendor")
}
