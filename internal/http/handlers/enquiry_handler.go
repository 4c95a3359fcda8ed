// README: Enquiry and client endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripquote/internal/modules/enquiry"
)

type EnquiryHandler struct {
	enquiries *enquiry.Service
}

func NewEnquiryHandler(enquiries *enquiry.Service) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

type createEnquiryRequest struct {
	Destination   string `json:"destination" binding:"required"`
	NumDays       int    `json:"num_days" binding:"required"`
	TravelerCount int    `json:"traveler_count" binding:"required"`
	TripType      string `json:"trip_type" binding:"required"`
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := h.enquiries.Create(c.Request.Context(), enquiry.CreateCommand{
		Destination:   req.Destination,
		NumDays:       req.NumDays,
		TravelerCount: req.TravelerCount,
		TripType:      enquiry.TripType(req.TripType),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, e)
}

func (h *EnquiryHandler) Get(c *gin.Context) {
	e, err := h.enquiries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, e)
}

func (h *EnquiryHandler) List(c *gin.Context) {
	list, err := h.enquiries.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"enquiries": list})
}

type attachClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Mobile string `json:"mobile"`
	City   string `json:"city"`
	Email  string `json:"email"`
}

func (h *EnquiryHandler) AttachClient(c *gin.Context) {
	var req attachClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, err := h.enquiries.AttachClient(c.Request.Context(), enquiry.AttachClientCommand{
		EnquiryID: c.Param("id"),
		Name:      req.Name,
		Mobile:    req.Mobile,
		City:      req.City,
		Email:     req.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, client)
}

func (h *EnquiryHandler) GetClient(c *gin.Context) {
	client, err := h.enquiries.ClientByEnquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if client == nil {
		writeJSON(c, http.StatusNotFound, gin.H{"error": "no client attached to this enquiry"})
		return
	}
	writeJSON(c, http.StatusOK, client)
}
