package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookTicketRequest struct {
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
	JourneyDate string             `json:"journeyDate"`
	JourneyTime string             `json:"journeyTime"`
	SeatClass   string             `json:"seatClass"`
}

// bookingResponse renders a ledger entry with the original wire field names.
// Seats travel as one comma-joined string, the shape the web client renders.
type bookingResponse struct {
	ID          string             `json:"_id"`
	User        string             `json:"user"`
	Flight      string             `json:"flight"`
	FlightName  string             `json:"flightName"`
	FlightID    string             `json:"flightId"`
	Departure   string             `json:"departure"`
	Destination string             `json:"destination"`
	Email       string             `json:"email"`
	Mobile      string             `json:"mobile"`
	Passengers  []domain.Passenger `json:"passengers"`
	Seats       string             `json:"seats"`
	TotalPrice  float64            `json:"totalPrice"`
	JourneyDate string             `json:"journeyDate"`
	JourneyTime string             `json:"journeyTime"`
	SeatClass   string             `json:"seatClass"`
	BookingDate string             `json:"bookingDate"`
	Status      string             `json:"bookingStatus"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.Engine) {
	router.POST("/book-ticket", h.bookTicket)
	router.PUT("/cancel-ticket/:id", h.cancelTicket)
	router.GET("/fetch-bookings", h.fetchBookings)
	router.GET("/fetch-booking/:id", h.fetchBooking)
}

func (h *BookingHandler) bookTicket(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	journeyDate, err := parseJourneyDate(req.JourneyDate)
	if err != nil {
		writeError(c, err)
		return
	}

	created, err := h.service.BookTicket(c.Request.Context(), booking.BookTicketInput{
		User:        req.User,
		Flight:      req.Flight,
		FlightName:  req.FlightName,
		FlightID:    req.FlightID,
		Departure:   req.Departure,
		Destination: req.Destination,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Passengers:  req.Passengers,
		TotalPrice:  req.TotalPrice,
		JourneyDate: journeyDate,
		JourneyTime: req.JourneyTime,
		SeatClass:   req.SeatClass,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking successful!",
		"booking": toBookingResponse(created),
	})
}

func (h *BookingHandler) cancelTicket(c *gin.Context) {
	cancelled, err := h.service.CancelTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": toBookingResponse(cancelled),
	})
}

func (h *BookingHandler) fetchBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) fetchBooking(c *gin.Context) {
	found, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		User:        b.User,
		Flight:      b.Flight,
		FlightName:  b.FlightName,
		FlightID:    b.FlightID,
		Departure:   b.Departure,
		Destination: b.Destination,
		Email:       b.Email,
		Mobile:      b.Mobile,
		Passengers:  b.Passengers,
		Seats:       strings.Join(b.Seats, ", "),
		TotalPrice:  b.TotalPrice,
		JourneyDate: b.JourneyDate.Format(time.RFC3339),
		JourneyTime: b.JourneyTime,
		SeatClass:   string(b.SeatClass),
		BookingDate: b.BookingDate.Format(time.RFC3339),
		Status:      string(b.Status),
	}
}

// parseJourneyDate accepts both full timestamps and bare dates, which is what
// the date picker in the web client submits.
func parseJourneyDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.NewInvalidRequest("journeyDate is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewInvalidRequest("journeyDate must be an RFC 3339 timestamp or YYYY-MM-DD")
}
