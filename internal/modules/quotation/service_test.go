package quotation

import (
	"context"
	"testing"

	"tripquote/internal/ai"
)

func TestServiceGenerateUsesCache(t *testing.T) {
	client := &fakeClient{
		parseOut:     "1. Proposed Itinerary: Day 1 arrival.",
		structureOut: structuredTwoDays,
	}
	p := NewPipeline(&fakeFactory{client: client}, stubRenderer{}, nil)
	svc := NewService(p, nil, nil, nil, nil, nil)

	in := testInput(testEnquiry(2))
	first, err := svc.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first.Failure != nil {
		t.Fatalf("unexpected failure: %+v", first.Failure)
	}

	second, err := svc.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if second != first {
		t.Fatal("identical inputs should be served from the cache")
	}
	if client.parseCalls != 1 || client.structureCalls != 1 {
		t.Fatalf("calls = %d/%d, want 1/1", client.parseCalls, client.structureCalls)
	}

	in.VendorReply = "Completely new vendor reply."
	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if client.parseCalls != 2 {
		t.Fatalf("changed input should re-run the pipeline, parse calls = %d", client.parseCalls)
	}
}

func TestServiceGenerateNeverCachesFailures(t *testing.T) {
	client := &fakeClient{
		parseErr: &ai.HTTPError{Provider: ai.ProviderGemini, StatusCode: 500, Body: `{"error":"transient"}`},
	}
	p := NewPipeline(&fakeFactory{client: client}, stubRenderer{}, nil)
	svc := NewService(p, nil, nil, nil, nil, nil)

	in := testInput(testEnquiry(2))
	res, err := svc.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Failure == nil {
		t.Fatal("expected a failure result")
	}

	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if client.parseCalls != 2 {
		t.Fatalf("retry after failure should re-run, parse calls = %d", client.parseCalls)
	}
}

func TestServiceGenerateRejectsNilEnquiry(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, nil)
	if _, err := svc.Generate(context.Background(), Input{}); err != ErrBadRequest {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
}
