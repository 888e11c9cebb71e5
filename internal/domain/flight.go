package domain

import "time"

type Flight struct {
	ID            string    `json:"_id"`
	FlightName    string    `json:"flightName"`
	FlightID      string    `json:"flightId"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	BasePrice     float64   `json:"basePrice"`
	TotalSeats    int       `json:"totalSeats"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FlightSpec carries the operator-supplied fields of a flight. Create and
// Update both take the whole spec; an update replaces every mutable field at
// once instead of merging field by field.
type FlightSpec struct {
	FlightName    string    `json:"flightName"`
	FlightID      string    `json:"flightId"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	BasePrice     float64   `json:"basePrice"`
	TotalSeats    int       `json:"totalSeats"`
}

func (s FlightSpec) Validate() error {
	if s.FlightID == "" {
		return NewInvalidRequest("flightId is required")
	}
	if s.FlightName == "" {
		return NewInvalidRequest("flightName is required")
	}
	if s.Origin == "" || s.Destination == "" {
		return NewInvalidRequest("origin and destination are required")
	}
	if s.BasePrice <= 0 {
		return NewInvalidRequest("basePrice must be positive")
	}
	if s.TotalSeats <= 0 {
		return NewInvalidRequest("totalSeats must be positive")
	}
	return nil
}
