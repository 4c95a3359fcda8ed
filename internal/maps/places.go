package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Attraction is a simplified Places result used to ground LLM suggestions.
type Attraction struct {
	Name             string
	Address          string
	Rating           float32
	UserRatingsTotal int
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// TopAttractions looks up well-rated tourist attractions for a destination.
// Results are capped at limit; the API's own relevance order is kept.
func (s *PlacesService) TopAttractions(ctx context.Context, destination string, limit int) ([]Attraction, error) {
	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("top tourist attractions in %s", destination),
		Type:  "tourist_attraction",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var out []Attraction
	for _, p := range resp.Results {
		out = append(out, Attraction{
			Name:             p.Name,
			Address:          p.FormattedAddress,
			Rating:           p.Rating,
			UserRatingsTotal: p.UserRatingsTotal,
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
