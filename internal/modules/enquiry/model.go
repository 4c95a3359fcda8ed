// README: Enquiry aggregate and trip-type definitions.
package enquiry

import "time"

type TripType string

const (
	TripLeisure   TripType = "Leisure"
	TripBusiness  TripType = "Business"
	TripAdventure TripType = "Adventure"
	TripHoneymoon TripType = "Honeymoon"
	TripFamily    TripType = "Family"
)

var tripTypes = []TripType{TripLeisure, TripBusiness, TripAdventure, TripHoneymoon, TripFamily}

func ValidTripType(t TripType) bool {
	for _, known := range tripTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Enquiry is a customer's travel request. Immutable once created; pipeline
// stages only ever read it.
type Enquiry struct {
	ID            string    `json:"id"`
	Destination   string    `json:"destination"`
	NumDays       int       `json:"num_days"`
	TravelerCount int       `json:"traveler_count"`
	TripType      TripType  `json:"trip_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// Client holds the optional contact attached to an enquiry.
type Client struct {
	ID        string    `json:"id"`
	EnquiryID string    `json:"enquiry_id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	City      string    `json:"city"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
