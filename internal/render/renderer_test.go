package render

import (
	"bytes"
	"testing"

	"tripquote/internal/modules/quotation"
)

func sampleQuotation() *quotation.Structured {
	return &quotation.Structured{
		ClientName:               "Mr./Ms. Priya",
		QuotationTitle:           "Your Exclusive Travel Package to Goa",
		DestinationSummary:       "Goa",
		DurationSummary:          "5 Days / 4 Nights",
		DatesSummary:             "Flexible Travel Dates",
		MealPlanSummary:          "Daily breakfast at hotel",
		RoomConfigurationSummary: "Standard double occupancy",
		VehicleSummary:           "Private AC vehicle",
		ItineraryTitle:           "Your Personalized 5-Day Journey in Goa",
		DetailedItinerary: []quotation.ItineraryDay{
			{DayNumber: "Day 1", Title: "Arrival", Description: "Arrive and check in."},
			{DayNumber: "Day 2", Title: "Beaches", Description: "North Goa beach circuit."},
		},
		HotelDetails: []quotation.HotelDetail{
			{DestinationLocation: "Goa", HotelName: "Seaside Resort", Nights: "4"},
		},
		CostPerHead:      "25000",
		TotalPaxForCost:  "2",
		TotalPackageCost: "50000",
		Currency:         "INR",
		Inclusions:       []string{"Accommodation", "Breakfast"},
		Exclusions:       []string{"Airfare"},
		GSTNote:          "GST will be applicable as per government norms, currently 5% on tour packages.",
		TCSNoteShort:     "TCS may be applicable for overseas packages.",
		CompanyContactPerson: "V.R.Viswanathan",
		CompanyPhone:         "+91-8884016046",
		CompanyEmail:         "vrtravelpackages@gmail.com",
		CompanyWebsite:       "www.tripexplore.in",
		StandardExclusionsList: []string{"Personal expenses"},
		ImportantNotes:         []string{"Subject to availability"},
		TCSRulesFull:           "Note: TCS applies per prevailing regulations.",
	}
}

func assertPDF(t *testing.T, b []byte) {
	t.Helper()
	if len(b) == 0 {
		t.Fatal("document is empty")
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("not a PDF, starts with %q", b[:min(len(b), 8)])
	}
}

// Assets are deliberately pointed at a directory with no fonts or images;
// rendering must still succeed on the core font fallback.
func TestRenderWithoutAssets(t *testing.T) {
	r := NewRenderer(t.TempDir(), nil)
	pdf, err := r.Render(sampleQuotation())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertPDF(t, pdf)
}

func TestRenderSanitizesNonLatinText(t *testing.T) {
	r := NewRenderer(t.TempDir(), nil)
	q := sampleQuotation()
	q.QuotationTitle = "Goa – “paradise” ₹5,000"
	q.DetailedItinerary[0].Description = "Café visits and 東京 style brunch."
	pdf, err := r.Render(q)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertPDF(t, pdf)
}

func TestRenderErrorDocumentPerType(t *testing.T) {
	r := NewRenderer(t.TempDir(), nil)
	types := []quotation.EnvelopeType{
		quotation.TypeConfigurationError,
		quotation.TypeHTTPError,
		quotation.TypeOutputParsingError,
		quotation.TypeJSONParsingError,
		quotation.TypeProviderAPIError,
		quotation.TypeUpstreamError,
		quotation.TypeGenericError,
		quotation.TypeSystemError,
	}
	for _, typ := range types {
		env := &quotation.Envelope{
			Message:    "something went wrong",
			Details:    "stage details",
			RawOutput:  "raw model text",
			Type:       typ,
			StatusCode: 500,
		}
		assertPDF(t, r.RenderError(env))
	}
}

func TestRenderErrorTruncatesLongRawOutput(t *testing.T) {
	r := NewRenderer(t.TempDir(), nil)
	env := &quotation.Envelope{
		Message:   "overflow",
		RawOutput: string(bytes.Repeat([]byte("x"), 5000)),
		Type:      quotation.TypeJSONParsingError,
	}
	assertPDF(t, r.RenderError(env))
}

func TestRenderCritical(t *testing.T) {
	r := NewRenderer(t.TempDir(), nil)
	assertPDF(t, r.RenderCritical("everything is on fire"))
}

func TestFallbackPDFIsWellFormed(t *testing.T) {
	b := fallbackPDF("disk full (cannot write)")
	assertPDF(t, b)
	if !bytes.Contains(b, []byte("%%EOF")) {
		t.Fatal("missing EOF marker")
	}
	if !bytes.Contains(b, []byte(`\(cannot write\)`)) {
		t.Fatal("parentheses not escaped in content stream")
	}
}
