// README: Shared response helpers; one place maps service errors to status codes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/itinerary"
	"tripquote/internal/modules/quotation"
)

func writeJSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, enquiry.ErrBadRequest), errors.Is(err, quotation.ErrBadRequest), errors.Is(err, itinerary.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, enquiry.ErrNotFound), errors.Is(err, quotation.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, quotation.ErrNoDocument):
		status = http.StatusNotFound
	case errors.Is(err, quotation.ErrDocxUnavailable):
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		c.Error(err) //nolint:errcheck
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// writeEnvelope answers with a pipeline failure envelope. The status comes
// from the envelope when it carries one, else 422.
func writeEnvelope(c *gin.Context, env *quotation.Envelope) {
	status := http.StatusUnprocessableEntity
	if env.StatusCode >= 400 && env.StatusCode < 600 {
		status = env.StatusCode
	}
	c.JSON(status, gin.H{"error": env})
}
