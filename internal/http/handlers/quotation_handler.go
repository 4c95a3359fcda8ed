// README: Vendor reply and quotation endpoints; generation, downloads, DOCX export.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripquote/internal/ai"
	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/itinerary"
	"tripquote/internal/modules/quotation"
)

type QuotationHandler struct {
	enquiries   *enquiry.Service
	itineraries *itinerary.Service
	quotations  *quotation.Service
}

func NewQuotationHandler(enquiries *enquiry.Service, itineraries *itinerary.Service, quotations *quotation.Service) *QuotationHandler {
	return &QuotationHandler{enquiries: enquiries, itineraries: itineraries, quotations: quotations}
}

type vendorReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *QuotationHandler) SubmitVendorReply(c *gin.Context) {
	var req vendorReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.enquiries.Get(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	vr, err := h.quotations.SubmitVendorReply(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"id": vr.ID, "enquiry_id": vr.EnquiryID, "created_at": vr.CreatedAt})
}

// Generate runs the full pipeline for an enquiry using the latest stored
// vendor reply and itinerary.
func (h *QuotationHandler) Generate(defaults ai.Options) gin.HandlerFunc {
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

		ctx := c.Request.Context()
		enquiryID := c.Param("id")
		e, err := h.enquiries.Get(ctx, enquiryID)
		if err != nil {
			writeError(c, err)
			return
		}

		vr, err := h.quotations.LatestVendorReply(ctx, enquiryID)
		if err != nil {
			writeError(c, err)
			return
		}
		if vr == nil {
			writeJSON(c, http.StatusConflict, gin.H{"error": "no vendor reply submitted for this enquiry"})
			return
		}

		in := quotation.Input{
			Enquiry:       e,
			VendorReplyID: vr.ID,
			VendorReply:   vr.Text,
			Provider:      provider,
			Options:       opts,
		}
		if client, err := h.enquiries.ClientByEnquiry(ctx, enquiryID); err == nil && client != nil {
			in.ClientName = client.Name
		}
		if it, err := h.itineraries.LatestByEnquiry(ctx, enquiryID); err == nil && it != nil {
			in.ItineraryID = it.ID
			in.ItineraryText = it.Text
		}

		res, err := h.quotations.Generate(ctx, in)
		if err != nil {
			writeError(c, err)
			return
		}
		if res.Failure != nil {
			writeEnvelope(c, res.Failure)
			return
		}
		writeJSON(c, http.StatusCreated, gin.H{
			"enquiry_id": enquiryID,
			"quotation":  res.Structured,
		})
	}
}

func (h *QuotationHandler) DownloadPDF(c *gin.Context) {
	pdf, err := h.quotations.GetPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="quotation.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *QuotationHandler) ExportDOCX(c *gin.Context) {
	out, err := h.quotations.ExportDOCX(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="quotation.docx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", out)
}

func (h *QuotationHandler) Latest(c *gin.Context) {
	rec, err := h.quotations.LatestRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}
