// README: Structured quotation document model and the error envelope shared by all pipeline stages.
package quotation

import "time"

// ItineraryDay is one entry of the day-wise plan.
type ItineraryDay struct {
	DayNumber   string `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HotelDetail is one row of the hotel table.
type HotelDetail struct {
	DestinationLocation string `json:"destination_location"`
	HotelName           string `json:"hotel_name"`
	Nights              string `json:"nights"`
}

// Structured is the full quotation document as produced by the structuring
// stage. Every field is a string (or a list of strings / typed rows) so the
// renderer never has to coerce types.
type Structured struct {
	ClientName               string `json:"client_name"`
	QuotationTitle           string `json:"quotation_title"`
	DestinationSummary       string `json:"destination_summary"`
	DurationSummary          string `json:"duration_summary"`
	DatesSummary             string `json:"dates_summary"`
	MealPlanSummary          string `json:"meal_plan_summary"`
	RoomConfigurationSummary string `json:"room_configuration_summary"`
	VehicleSummary           string `json:"vehicle_summary"`
	MainImagePlaceholderText string `json:"main_image_placeholder_text"`

	ItineraryTitle    string         `json:"itinerary_title"`
	DetailedItinerary []ItineraryDay `json:"detailed_itinerary"`
	HotelDetails      []HotelDetail  `json:"hotel_details"`

	CostPerHead      string `json:"cost_per_head"`
	TotalPaxForCost  string `json:"total_pax_for_cost"`
	TotalPackageCost string `json:"total_package_cost"`
	Currency         string `json:"currency"`

	Inclusions []string `json:"inclusions"`
	Exclusions []string `json:"exclusions"`

	GSTNote      string `json:"gst_note"`
	TCSNoteShort string `json:"tcs_note_short"`

	CompanyContactPerson string `json:"company_contact_person"`
	CompanyPhone         string `json:"company_phone"`
	CompanyEmail         string `json:"company_email"`
	CompanyWebsite       string `json:"company_website"`

	StandardExclusionsList []string `json:"standard_exclusions_list"`
	ImportantNotes         []string `json:"important_notes"`
	TCSRulesFull           string   `json:"tcs_rules_full"`
}

// EnvelopeType classifies a pipeline failure for display and logging.
type EnvelopeType string

const (
	TypeConfigurationError EnvelopeType = "ConfigurationError"
	TypeHTTPError          EnvelopeType = "HttpError"
	TypeOutputParsingError EnvelopeType = "OutputParsingError"
	TypeJSONParsingError   EnvelopeType = "JsonParsingError"
	TypeProviderAPIError   EnvelopeType = "ProviderAPIError"
	TypeUpstreamError      EnvelopeType = "UpstreamError"
	TypeGenericError       EnvelopeType = "GenericError"
	TypeSystemError        EnvelopeType = "SystemError"
)

// Envelope is the uniform failure record a stage produces instead of a
// result. It always renders to a document; it is never cached.
type Envelope struct {
	Message    string       `json:"message"`
	Details    string       `json:"details,omitempty"`
	RawOutput  string       `json:"raw_output,omitempty"`
	Type       EnvelopeType `json:"type"`
	StatusCode int          `json:"status_code,omitempty"`
}

func (e *Envelope) Error() string {
	return string(e.Type) + ": " + e.Message
}

// Record is a persisted quotation row: the structured data plus pointers to
// the inputs it was generated from and where the rendered files live.
type Record struct {
	ID                string      `json:"id"`
	EnquiryID         string      `json:"enquiry_id"`
	ItineraryUsedID   string      `json:"itinerary_used_id,omitempty"`
	VendorReplyUsedID string      `json:"vendor_reply_used_id,omitempty"`
	StructuredData    *Structured `json:"structured_data,omitempty"`
	PDFStoragePath    string      `json:"pdf_storage_path,omitempty"`
	DocxStoragePath   string      `json:"docx_storage_path,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

// VendorReply is a stored vendor response for an enquiry, kept verbatim.
type VendorReply struct {
	ID        string    `json:"id"`
	EnquiryID string    `json:"enquiry_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
