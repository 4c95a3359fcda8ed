package itinerary

import (
	"context"
	"strings"
	"testing"

	"tripquote/internal/ai"
	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/quotation"
)

type fakeClient struct {
	out   string
	err   error
	calls int
	vars  map[string]string
}

func (f *fakeClient) Complete(_ context.Context, _ string, vars map[string]string) (string, error) {
	f.calls++
	f.vars = vars
	return f.out, f.err
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

func testEnquiry() *enquiry.Enquiry {
	return &enquiry.Enquiry{
		ID:            "enq-1",
		Destination:   "Lisbon",
		NumDays:       4,
		TravelerCount: 2,
		TripType:      enquiry.TripLeisure,
	}
}

func TestSuggestPlaces(t *testing.T) {
	client := &fakeClient{out: "Belem Tower, Alfama district, Tram 28, LX Factory"}
	svc := NewService(&fakeFactory{client: client}, nil, nil, nil)

	it, env := svc.SuggestPlaces(context.Background(), testEnquiry(), ai.ProviderGemini, ai.Options{Temperature: 0.7})
	if env != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if it.Text != client.out {
		t.Fatalf("text = %q", it.Text)
	}
	if it.EnquiryID != "enq-1" || it.ID == "" {
		t.Fatalf("itinerary not filled in: %+v", it)
	}
	if client.vars["destination"] != "Lisbon" || client.vars["num_days"] != "4" {
		t.Fatalf("prompt vars = %v", client.vars)
	}
	if client.vars["attraction_hints"] != "" {
		t.Fatalf("hints should be empty without a places service, got %q", client.vars["attraction_hints"])
	}
}

func TestSuggestPlacesNeverCached(t *testing.T) {
	client := &fakeClient{out: "first"}
	svc := NewService(&fakeFactory{client: client}, nil, nil, nil)
	e := testEnquiry()

	if _, env := svc.SuggestPlaces(context.Background(), e, ai.ProviderGemini, ai.Options{}); env != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if _, env := svc.SuggestPlaces(context.Background(), e, ai.ProviderGemini, ai.Options{}); env != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if client.calls != 2 {
		t.Fatalf("calls = %d, want one per request", client.calls)
	}
}

func TestSuggestPlacesMissingCredential(t *testing.T) {
	factory := &fakeFactory{err: &ai.ConfigError{Provider: ai.ProviderGroq, EnvVar: "GROQ_API_KEY"}}
	svc := NewService(factory, nil, nil, nil)

	_, env := svc.SuggestPlaces(context.Background(), testEnquiry(), ai.ProviderGroq, ai.Options{})
	if env == nil || env.Type != quotation.TypeConfigurationError {
		t.Fatalf("envelope = %+v, want ConfigurationError", env)
	}
	if !strings.Contains(env.Message, "GROQ_API_KEY") {
		t.Fatalf("message %q should name the env var", env.Message)
	}
}

func TestSuggestPlacesEmptyOutput(t *testing.T) {
	client := &fakeClient{out: "  "}
	svc := NewService(&fakeFactory{client: client}, nil, nil, nil)

	_, env := svc.SuggestPlaces(context.Background(), testEnquiry(), ai.ProviderGemini, ai.Options{})
	if env == nil || env.Type != quotation.TypeOutputParsingError {
		t.Fatalf("envelope = %+v, want OutputParsingError", env)
	}
}
