package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/seats"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Booking, error)
	CancelTicket(ctx context.Context, id string) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

// Cache is the cross-instance allocation lock. Optional: with a nil cache the
// in-process key mutex still serializes bookings within one instance.
type Cache interface {
	AcquireAllocationLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseAllocationLock(ctx context.Context, key string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// Notification events drive customer email; give them a few attempts before
// giving up.
const notificationsPublishRetries = 3

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	lockTTL            time.Duration
	allocLocks         *keyLocks
}

// BookTicketInput mirrors the POST /book-ticket body. The flight snapshot
// fields (flightName, flightId, departure, destination) are stored on the
// booking as submitted so the record survives later flight edits.
type BookTicketInput struct {
	User        string             `json:"user"`
	Flight      string             `json:"flight"`
	FlightName  string             `json:"flightName"`
	FlightID    string             `json:"flightId"`
	Departure   string             `json:"departure"`
	Destination string             `json:"destination"`
	Email       string             `json:"email"`
	Mobile      string             `json:"mobile"`
	Passengers  []domain.Passenger `json:"passengers"`
	TotalPrice  float64            `json:"totalPrice"`
	JourneyDate time.Time          `json:"journeyDate"`
	JourneyTime string             `json:"journeyTime"`
	SeatClass   string             `json:"seatClass"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	lockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		lockTTL:      lockTTL,
		allocLocks:   newKeyLocks(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (*domain.Booking, error) {
	class, err := validateBookTicketInput(input)
	if err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, input.Flight)
	if err != nil {
		return nil, err
	}

	key := allocationKey(input.Flight, input.JourneyDate, class)
	unlock := s.allocLocks.Lock(key)
	defer unlock()

	if s.cache != nil {
		ok, err := s.cache.AcquireAllocationLock(ctx, key, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.NewConflict("another booking for this flight is in progress, retry shortly")
		}
		defer func() {
			_ = s.cache.ReleaseAllocationLock(ctx, key)
		}()
	}

	existing, err := s.bookings.ListForAllocation(ctx, input.Flight, input.JourneyDate, class)
	if err != nil {
		return nil, err
	}
	booked, occupied := occupancy(existing)

	if allotment := class.Allotment(flight.TotalSeats); booked+len(input.Passengers) > allotment {
		return nil, domain.NewConflict(fmt.Sprintf("only %d %s seats left on this flight", allotment-booked, class))
	}

	seatCodes, err := seats.Allocate(occupied, class, len(input.Passengers))
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:          uuid.NewString(),
		User:        input.User,
		Flight:      input.Flight,
		FlightName:  input.FlightName,
		FlightID:    input.FlightID,
		Departure:   input.Departure,
		Destination: input.Destination,
		Email:       input.Email,
		Mobile:      input.Mobile,
		Passengers:  input.Passengers,
		Seats:       seatCodes,
		TotalPrice:  input.TotalPrice,
		JourneyDate: input.JourneyDate,
		JourneyTime: input.JourneyTime,
		SeatClass:   class,
		BookingDate: time.Now().UTC(),
		Status:      domain.BookingStatusConfirmed,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) CancelTicket(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Cancelled() {
		return current, nil
	}

	updated, err := s.bookings.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_cancelled", updated); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %s: %v", updated.ID, err)
	}
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func validateBookTicketInput(input BookTicketInput) (domain.SeatClass, error) {
	if input.Flight == "" {
		return "", domain.NewInvalidRequest("flight reference is required")
	}
	if input.User == "" {
		return "", domain.NewInvalidRequest("user is required")
	}
	if input.Email == "" {
		return "", domain.NewInvalidRequest("email is required")
	}
	if input.Mobile == "" {
		return "", domain.NewInvalidRequest("mobile is required")
	}
	if len(input.Passengers) == 0 {
		return "", domain.NewInvalidRequest("a booking must have at least one passenger")
	}
	for _, p := range input.Passengers {
		if p.Name == "" {
			return "", domain.NewInvalidRequest("passenger name is required")
		}
		if p.Age < 0 {
			return "", domain.NewInvalidRequest("passenger age cannot be negative")
		}
	}
	if input.TotalPrice <= 0 {
		return "", domain.NewInvalidRequest("totalPrice must be positive")
	}
	if input.JourneyDate.IsZero() {
		return "", domain.NewInvalidRequest("journeyDate is required")
	}
	return domain.ParseSeatClass(input.SeatClass)
}

// occupancy sums confirmed passengers and collects their seat codes. Seat
// codes held by confirmed bookings must never be reissued, even when an
// earlier booking's cancellation opened lower numbers.
func occupancy(bookings []domain.Booking) (int, []string) {
	total := 0
	var occupied []string
	for _, b := range bookings {
		if b.Status != domain.BookingStatusConfirmed {
			continue
		}
		total += len(b.Passengers)
		occupied = append(occupied, b.Seats...)
	}
	return total, occupied
}

// allocationKey scopes seat numbering: one flight, one calendar day, one class.
func allocationKey(flightRef string, journeyDate time.Time, class domain.SeatClass) string {
	return fmt.Sprintf("%s:%s:%s", flightRef, journeyDate.Format("2006-01-02"), class)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		FlightID:    booking.FlightID,
		FlightName:  booking.FlightName,
		Email:       booking.Email,
		SeatClass:   string(booking.SeatClass),
		Seats:       booking.Seats,
		Passengers:  len(booking.Passengers),
		JourneyDate: booking.JourneyDate,
		Status:      string(booking.Status),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.PublishWithRetry(ctx, s.notificationsTopic, booking.ID, event, notificationsPublishRetries)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
