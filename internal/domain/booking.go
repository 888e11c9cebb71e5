package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Passenger struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Booking is a ledger entry. The flightName/flightId/departure/destination
// fields are a snapshot taken at booking time so the record stays stable when
// the flight is edited later. Bookings are never deleted; cancellation only
// flips Status.
type Booking struct {
	ID          string        `json:"_id"`
	User        string        `json:"user"`
	Flight      string        `json:"flight"`
	FlightName  string        `json:"flightName"`
	FlightID    string        `json:"flightId"`
	Departure   string        `json:"departure"`
	Destination string        `json:"destination"`
	Email       string        `json:"email"`
	Mobile      string        `json:"mobile"`
	Passengers  []Passenger   `json:"passengers"`
	Seats       []string      `json:"-"`
	TotalPrice  float64       `json:"totalPrice"`
	JourneyDate time.Time     `json:"journeyDate"`
	JourneyTime string        `json:"journeyTime"`
	SeatClass   SeatClass     `json:"seatClass"`
	BookingDate time.Time     `json:"bookingDate"`
	Status      BookingStatus `json:"bookingStatus"`
}

func (b *Booking) Cancelled() bool {
	return b.Status == BookingStatusCancelled
}
