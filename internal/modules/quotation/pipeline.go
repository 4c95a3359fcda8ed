// README: The three-stage generation pipeline: parse vendor reply, structure JSON, render document.
package quotation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tripquote/internal/ai"
	"tripquote/internal/modules/enquiry"
)

// ClientFactory builds a ChatClient for a provider. *ai.Gateway satisfies
// it; tests substitute fakes.
type ClientFactory interface {
	GetClient(provider ai.Provider, opts ai.Options) (ai.ChatClient, error)
}

// DocumentRenderer turns pipeline output into a displayable document. All
// three methods must return usable bytes; RenderError and RenderCritical
// may not fail.
type DocumentRenderer interface {
	Render(q *Structured) ([]byte, error)
	RenderError(env *Envelope) []byte
	RenderCritical(message string) []byte
}

// Input is everything a single generation run reads. Fields are snapshots;
// the pipeline never goes back to a store mid-run.
type Input struct {
	Enquiry       *enquiry.Enquiry
	ClientName    string
	VendorReplyID string
	VendorReply   string
	ItineraryID   string
	ItineraryText string
	Provider      ai.Provider
	Options       ai.Options
}

type Pipeline struct {
	clients  ClientFactory
	renderer DocumentRenderer
	log      *zap.Logger
}

func NewPipeline(clients ClientFactory, renderer DocumentRenderer, log *zap.Logger) *Pipeline {
	return &Pipeline{clients: clients, renderer: renderer, log: log}
}

// Run executes all stages and always returns a Result with a non-empty
// Document. A stage failure short-circuits the later model calls but still
// renders: the failure envelope becomes the document.
func (p *Pipeline) Run(ctx context.Context, in Input) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			env := &Envelope{
				Message: fmt.Sprintf("unexpected failure during quotation generation: %v", r),
				Type:    TypeSystemError,
			}
			if p.log != nil {
				p.log.Error("pipeline panic", zap.Any("cause", r))
			}
			res = &Result{Failure: env, Document: p.renderer.RenderCritical(env.Message)}
		}
	}()

	res = &Result{
		VendorReplyID:   in.VendorReplyID,
		ItineraryUsedID: in.ItineraryID,
	}

	parsed, env := p.parseVendorReply(ctx, in)
	if env != nil {
		// Later stages were skipped; record that while keeping the
		// original message and payload front and center.
		wrapped := &Envelope{
			Message:    env.Message,
			Details:    fmt.Sprintf("Quotation structuring was skipped because vendor reply parsing failed (%s). %s", env.Type, env.Details),
			RawOutput:  env.RawOutput,
			Type:       TypeUpstreamError,
			StatusCode: env.StatusCode,
		}
		if env.Type == TypeConfigurationError {
			// Credential problems stay actionable as-is.
			wrapped = env
		}
		res.Failure = wrapped
		res.Document = p.renderer.RenderError(wrapped)
		return res
	}
	res.ParsedVendor = parsed

	structured, env := p.structureQuotation(ctx, in, parsed)
	if env != nil {
		res.Failure = env
		res.Document = p.renderer.RenderError(env)
		return res
	}
	res.Structured = structured

	doc, err := p.renderer.Render(structured)
	if err != nil {
		// Rendering must not sink the run; fall back to a plain page.
		if p.log != nil {
			p.log.Error("document rendering failed", zap.Error(err))
		}
		doc = p.renderer.RenderCritical("The quotation was generated but the document could not be rendered: " + err.Error())
	}
	res.Document = doc
	return res
}

func (p *Pipeline) parseVendorReply(ctx context.Context, in Input) (string, *Envelope) {
	if strings.TrimSpace(in.VendorReply) == "" {
		return "", &Envelope{
			Message: "No vendor reply provided for this enquiry.",
			Details: "Submit the vendor's response text before generating a quotation.",
			Type:    TypeGenericError,
		}
	}

	opts := in.Options
	opts.JSONMode = false
	client, err := p.clients.GetClient(in.Provider, opts)
	if err != nil {
		return "", ClassifyAIError(in.Provider, "vendor reply parsing", err)
	}

	out, err := client.Complete(ctx, ai.VendorReplyParsingPrompt, map[string]string{
		"vendor_reply": in.VendorReply,
		"destination":  in.Enquiry.Destination,
		"num_days":     strconv.Itoa(in.Enquiry.NumDays),
	})
	if err != nil {
		return "", ClassifyAIError(in.Provider, "vendor reply parsing", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", &Envelope{
			Message:   "The model returned an empty response while parsing the vendor reply.",
			Details:   fmt.Sprintf("Provider: %s", in.Provider),
			RawOutput: out,
			Type:      TypeOutputParsingError,
		}
	}
	if p.log != nil {
		p.log.Debug("vendor reply parsed", zap.String("enquiry_id", in.Enquiry.ID), zap.Int("chars", len(out)))
	}
	return out, nil
}

func (p *Pipeline) structureQuotation(ctx context.Context, in Input, parsedVendor string) (*Structured, *Envelope) {
	opts := in.Options
	opts.JSONMode = true
	client, err := p.clients.GetClient(in.Provider, opts)
	if err != nil {
		return nil, ClassifyAIError(in.Provider, "quotation structuring", err)
	}

	e := in.Enquiry
	clientPlaceholder := "Mr./Ms. Valued Client"
	if name := strings.TrimSpace(in.ClientName); name != "" {
		clientPlaceholder = "Mr./Ms. " + name
	}
	numNights := e.NumDays - 1
	if numNights < 0 {
		numNights = 0
	}

	raw, err := client.Complete(ctx, ai.QuotationStructurePrompt, map[string]string{
		"destination":                 e.Destination,
		"num_days":                    strconv.Itoa(e.NumDays),
		"num_nights":                  strconv.Itoa(numNights),
		"traveler_count":              strconv.Itoa(e.TravelerCount),
		"trip_type":                   string(e.TripType),
		"client_name_placeholder":     clientPlaceholder,
		"vendor_parsed_text":          parsedVendor,
		"ai_suggested_itinerary_text": itineraryOrNone(in.ItineraryText),
	})
	if err != nil {
		return nil, ClassifyAIError(in.Provider, "quotation structuring", err)
	}

	jsonText, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, &Envelope{
			Message:   "The model's response did not contain a JSON object.",
			Details:   err.Error(),
			RawOutput: raw,
			Type:      TypeJSONParsingError,
		}
	}
	structured, err := DecodeStructured(jsonText)
	if err != nil {
		return nil, &Envelope{
			Message:   "The model's JSON could not be decoded into a quotation.",
			Details:   err.Error(),
			RawOutput: raw,
			Type:      TypeJSONParsingError,
		}
	}

	structured.DetailedItinerary = NormalizeItinerary(
		structured.DetailedItinerary,
		e.NumDays,
		e.Destination,
		VendorProvidedItinerary(parsedVendor),
	)
	if structured.ClientName == "" {
		structured.ClientName = clientPlaceholder
	}
	if p.log != nil {
		p.log.Debug("quotation structured",
			zap.String("enquiry_id", e.ID),
			zap.Int("itinerary_days", len(structured.DetailedItinerary)),
		)
	}
	return structured, nil
}

func itineraryOrNone(text string) string {
	if strings.TrimSpace(text) == "" {
		return "No prior suggestions available."
	}
	return text
}
