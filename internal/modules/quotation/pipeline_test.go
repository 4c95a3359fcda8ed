package quotation

import (
	"context"
	"strings"
	"testing"

	"tripquote/internal/ai"
	"tripquote/internal/modules/enquiry"
)

type stubRenderer struct{}

func (stubRenderer) Render(q *Structured) ([]byte, error) { return []byte("%PDF quotation"), nil }
func (stubRenderer) RenderError(env *Envelope) []byte {
	return []byte("%PDF error " + string(env.Type))
}
func (stubRenderer) RenderCritical(message string) []byte { return []byte("%PDF critical") }

// fakeClient answers the parsing and structuring prompts separately,
// telling them apart by their template text.
type fakeClient struct {
	parseOut       string
	parseErr       error
	structureOut   string
	structureErr   error
	parseCalls     int
	structureCalls int
}

func (f *fakeClient) Complete(_ context.Context, promptTemplate string, _ map[string]string) (string, error) {
	if strings.Contains(promptTemplate, "expert at parsing vendor replies") {
		f.parseCalls++
		return f.parseOut, f.parseErr
	}
	f.structureCalls++
	return f.structureOut, f.structureErr
}

type fakeFactory struct {
	client *fakeClient
	err    error
}

func (f *fakeFactory) GetClient(ai.Provider, ai.Options) (ai.ChatClient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

func testEnquiry(numDays int) *enquiry.Enquiry {
	return &enquiry.Enquiry{
		ID:            "enq-1",
		Destination:   "Goa",
		NumDays:       numDays,
		TravelerCount: 2,
		TripType:      enquiry.TripLeisure,
	}
}

func testInput(e *enquiry.Enquiry) Input {
	return Input{
		Enquiry:     e,
		ClientName:  "Priya",
		VendorReply: "Day 1 arrival, Day 2 beach tour. INR 50000 total for 2 pax.",
		Provider:    ai.ProviderGemini,
		Options:     ai.Options{Temperature: 0.7, MaxTokens: 4096},
	}
}

const structuredTwoDays = "```json\n" + `{
	"client_name": "Mr./Ms. Priya",
	"quotation_title": "Your Exclusive Travel Package to Goa",
	"detailed_itinerary": [
		{"day_number": "Day 1", "title": "Arrival", "description": "Arrive and relax."},
		{"day_number": "Day 2", "title": "Beach Tour", "description": "North Goa beaches."}
	],
	"currency": "INR",
	"total_package_cost": "50000"
}` + "\n```"

func TestPipelineHappyPathNormalizesDayCount(t *testing.T) {
	client := &fakeClient{
		parseOut:     "1. Proposed Itinerary: Day 1 arrival, Day 2 beach tour.",
		structureOut: structuredTwoDays,
	}
	p := NewPipeline(&fakeFactory{client: client}, stubRenderer{}, nil)

	res := p.Run(context.Background(), testInput(testEnquiry(5)))
	if res.Failure != nil {
		t.Fatalf("unexpected failure: %+v", res.Failure)
	}
	if len(res.Document) == 0 {
		t.Fatal("document must not be empty")
	}
	if got := len(res.Structured.DetailedItinerary); got != 5 {
		t.Fatalf("itinerary days = %d, want 5", got)
	}
	if res.Structured.DetailedItinerary[4].DayNumber != "Day 5" {
		t.Fatalf("last day numbered %q", res.Structured.DetailedItinerary[4].DayNumber)
	}
	if client.parseCalls != 1 || client.structureCalls != 1 {
		t.Fatalf("calls = %d/%d, want 1/1", client.parseCalls, client.structureCalls)
	}
	if res.ParsedVendor == "" {
		t.Fatal("parsed vendor text missing from result")
	}
}

func TestPipelineEmptyVendorReply(t *testing.T) {
	client := &fakeClient{}
	p := NewPipeline(&fakeFactory{client: client}, stubRenderer{}, nil)

	in := testInput(testEnquiry(3))
	in.VendorReply = "   "
	res := p.Run(context.Background(), in)

	if res.Failure == nil || res.Failure.Type != TypeGenericError {
		t.Fatalf("failure = %+v, want GenericError", res.Failure)
	}
	if client.parseCalls != 0 || client.structureCalls != 0 {
		t.Fatal("no model calls expected for an empty vendor reply")
	}
	if len(res.Document) == 0 {
		t.Fatal("document must not be empty")
	}
}

func TestPipelineMissingCredentialSurfacesConfigError(t *testing.T) {
	factory := &fakeFactory{err: &ai.ConfigError{Provider: ai.ProviderGemini, EnvVar: "GOOGLE_API_KEY"}}
	p := NewPipeline(factory, stubRenderer{}, nil)

	res := p.Run(context.Background(), testInput(testEnquiry(3)))
	if res.Failure == nil || res.Failure.Type != TypeConfigurationError {
		t.Fatalf("failure = %+v, want ConfigurationError", res.Failure)
	}
	if !strings.Contains(res.Failure.Message, "GOOGLE_API_KEY") {
		t.Fatalf("message %q should name the env var", res.Failure.Message)
	}
	if len(res.Document) == 0 {
		t.Fatal("document must not be empty")
	}
}

func TestPipelineParseFailureSkipsStructuring(t *testing.T) {
	client := &fakeClient{
		parseErr: &ai.HTTPError{Provider: ai.ProviderGroq, StatusCode: 429, Body: `{"error":{"message":"rate limit reached"}}`},
	}
	p := NewPipeline(&fakeFactory{client: client}, stubRenderer{}, nil)

	in := testInput(testEnquiry(3))
	in.Provider = ai.ProviderGroq
	res := p.Run(context.Background(), in)

	if res.Failure == nil || res.Failure.Type != TypeUpstreamError {
		t.Fatalf("failure = %+v, want UpstreamError", res.Failure)
	}
	if !strings.Contains(res.Failure.Message, "rate limit reached") {
		t.Fatalf("message %q should carry the provider message", res.Failure.Message)
	}
	if res.Failure.StatusCode != 429 {
		t.Fatalf("status = %d, want 429", res.Failure.StatusCode)
	}
	if client.structureCalls != 0 {
		t.Fatal("structuring must not run after a parse failure")
	}
}

func TestPipelineEmptyParseOutput(t *testing.T) {
	client := &fakeClient{parseOut: "  \n "}
	p := NewPipeline(&fakeFactory{client: client}, stubRenderer{}, nil)

	res := p.Run(context.Background(), testInput(testEnquiry(3)))
	if res.Failure == nil || res.Failure.Type != TypeUpstreamError {
		t.Fatalf("failure = %+v, want UpstreamError wrapping the parse failure", res.Failure)
	}
	if !strings.Contains(res.Failure.Details, string(TypeOutputParsingError)) {
		t.Fatalf("details %q should name the original failure type", res.Failure.Details)
	}
	if client.structureCalls != 0 {
		t.Fatal("structuring must not run after a parse failure")
	}
}

func TestPipelineBadStructureJSONKeepsRawOutput(t *testing.T) {
	client := &fakeClient{
		parseOut:     "1. Proposed Itinerary: Day 1 arrival.",
		structureOut: "I could not produce JSON today, sorry.",
	}
	p := NewPipeline(&fakeFactory{client: client}, stubRenderer{}, nil)

	res := p.Run(context.Background(), testInput(testEnquiry(3)))
	if res.Failure == nil || res.Failure.Type != TypeJSONParsingError {
		t.Fatalf("failure = %+v, want JsonParsingError", res.Failure)
	}
	if res.Failure.RawOutput != "I could not produce JSON today, sorry." {
		t.Fatalf("raw output %q lost", res.Failure.RawOutput)
	}
	if len(res.Document) == 0 {
		t.Fatal("document must not be empty")
	}
}

func TestClassifyAIErrorExtractsEmbeddedPayload(t *testing.T) {
	err := opaqueError("call failed with status_code=503, body={'error': {'message': 'model overloaded'}}")
	env := ClassifyAIError(ai.ProviderTogetherAI, "quotation structuring", err)
	if env.Type != TypeProviderAPIError {
		t.Fatalf("type = %s, want ProviderAPIError", env.Type)
	}
	if env.Message != "model overloaded" {
		t.Fatalf("message = %q", env.Message)
	}
	if env.StatusCode != 503 {
		t.Fatalf("status = %d, want 503", env.StatusCode)
	}
}

type opaqueError string

func (e opaqueError) Error() string { return string(e) }
