package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send delivers a booking notification. Delivery is a stub that writes to
// stdout; the worker wires it to the notifications topic.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_created":
		fmt.Printf("send email to %s: booking %s confirmed on %s, seats %s\n",
			event.Email, event.BookingID, event.FlightName, strings.Join(event.Seats, ", "))
	case "booking_cancelled":
		fmt.Printf("send email to %s: booking %s on %s cancelled\n",
			event.Email, event.BookingID, event.FlightName)
	default:
		fmt.Printf("send email to %s about %s for booking %s\n", event.Email, event.Type, event.BookingID)
	}
	return nil
}
