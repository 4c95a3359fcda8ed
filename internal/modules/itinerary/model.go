package itinerary

import "time"

// Itinerary is a day-wise suggestion text generated for an enquiry. The
// text is kept verbatim so later stages can quote it back to the model.
type Itinerary struct {
	ID        string    `json:"id"`
	EnquiryID string    `json:"enquiry_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
