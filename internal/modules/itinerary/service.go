// README: Itinerary suggestion service; one model call, optionally grounded with Places results.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripquote/internal/ai"
	"tripquote/internal/maps"
	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/quotation"
)

var ErrBadRequest = errors.New("bad request")

const attractionHintLimit = 8

type Service struct {
	clients quotation.ClientFactory
	store   *Store
	places  *maps.PlacesService
	log     *zap.Logger
}

// NewService wires the itinerary service. places is optional; nil skips
// the attraction grounding step.
func NewService(clients quotation.ClientFactory, store *Store, places *maps.PlacesService, log *zap.Logger) *Service {
	return &Service{clients: clients, store: store, places: places, log: log}
}

// SuggestPlaces asks the model for a flat list of places and activities for
// an enquiry and stores the result. Suggestions are never cached: each call
// is a fresh generation. On failure it returns a display-ready envelope.
func (s *Service) SuggestPlaces(ctx context.Context, e *enquiry.Enquiry, provider ai.Provider, opts ai.Options) (*Itinerary, *quotation.Envelope) {
	opts.JSONMode = false
	client, err := s.clients.GetClient(provider, opts)
	if err != nil {
		return nil, quotation.ClassifyAIError(provider, "itinerary suggestion", err)
	}

	text, err := client.Complete(ctx, ai.PlacesSuggestionPrompt, map[string]string{
		"destination":      e.Destination,
		"num_days":         strconv.Itoa(e.NumDays),
		"traveler_count":   strconv.Itoa(e.TravelerCount),
		"trip_type":        string(e.TripType),
		"attraction_hints": s.attractionHints(ctx, e.Destination),
	})
	if err != nil {
		return nil, quotation.ClassifyAIError(provider, "itinerary suggestion", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, &quotation.Envelope{
			Message:   "The model returned an empty itinerary suggestion.",
			Details:   fmt.Sprintf("Provider: %s", provider),
			RawOutput: text,
			Type:      quotation.TypeOutputParsingError,
		}
	}

	it := &Itinerary{
		ID:        uuid.NewString(),
		EnquiryID: e.ID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if s.store != nil {
		if err := s.store.Create(ctx, it); err != nil {
			if s.log != nil {
				s.log.Error("itinerary store failed", zap.String("enquiry_id", e.ID), zap.Error(err))
			}
			// The generated text is still usable; return it unsaved.
		}
	}
	return it, nil
}

// attractionHints turns Places results into a prompt fragment. Any lookup
// trouble degrades to an empty hint rather than failing the suggestion.
func (s *Service) attractionHints(ctx context.Context, destination string) string {
	if s.places == nil {
		return ""
	}
	attractions, err := s.places.TopAttractions(ctx, destination, attractionHintLimit)
	if err != nil {
		if s.log != nil {
			s.log.Warn("places lookup failed", zap.String("destination", destination), zap.Error(err))
		}
		return ""
	}
	if len(attractions) == 0 {
		return ""
	}
	names := make([]string, 0, len(attractions))
	for _, a := range attractions {
		names = append(names, a.Name)
	}
	return "For grounding, some well-rated attractions there: " + strings.Join(names, ", ") + "."
}

// LatestByEnquiry returns the newest stored itinerary for an enquiry, or
// (nil, nil) when none exists.
func (s *Service) LatestByEnquiry(ctx context.Context, enquiryID string) (*Itinerary, error) {
	if enquiryID == "" {
		return nil, ErrBadRequest
	}
	return s.store.LatestByEnquiry(ctx, enquiryID)
}
