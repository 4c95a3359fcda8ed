// README: Itinerary suggestion endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripquote/internal/ai"
	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/itinerary"
)

type ItineraryHandler struct {
	enquiries   *enquiry.Service
	itineraries *itinerary.Service
}

func NewItineraryHandler(enquiries *enquiry.Service, itineraries *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{enquiries: enquiries, itineraries: itineraries}
}

// generationRequest selects the provider and generation settings for any
// model-backed endpoint.
type generationRequest struct {
	Provider    string   `json:"provider" binding:"required"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

func (r generationRequest) options(defaults ai.Options) (ai.Provider, ai.Options, bool) {
	provider := ai.Provider(r.Provider)
	if !provider.Valid() {
		return provider, defaults, false
	}
	opts := defaults
	opts.Model = r.Model
	if r.Temperature != nil {
		opts.Temperature = *r.Temperature
	}
	if r.MaxTokens != nil {
		opts.MaxTokens = *r.MaxTokens
	}
	return provider, opts, true
}

func (h *ItineraryHandler) Suggest(defaults ai.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		provider, opts, ok := req.options(defaults)
		if !ok {
			writeJSON(c, http.StatusBadRequest, gin.H{"error": "unsupported provider: " + req.Provider})
			return
		}
		e, err := h.enquiries.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		it, env := h.itineraries.SuggestPlaces(c.Request.Context(), e, provider, opts)
		if env != nil {
			writeEnvelope(c, env)
			return
		}
		writeJSON(c, http.StatusCreated, it)
	}
}

func (h *ItineraryHandler) Latest(c *gin.Context) {
	it, err := h.itineraries.LatestByEnquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if it == nil {
		writeJSON(c, http.StatusNotFound, gin.H{"error": "no itinerary generated for this enquiry"})
		return
	}
	writeJSON(c, http.StatusOK, it)
}
