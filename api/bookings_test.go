package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) BookTicket(ctx context.Context, input booking.BookTicketInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelTicket(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "booking-1",
		User:        "user-1",
		Flight:      "flight-1",
		FlightName:  "Skyline Airways",
		FlightID:    "SL-101",
		Departure:   "New York",
		Destination: "Los Angeles",
		Email:       "john@example.com",
		Mobile:      "1234567890",
		Passengers:  []domain.Passenger{{Name: "John Doe", Age: 30}, {Name: "Jane Doe", Age: 28}},
		Seats:       []string{"E-1", "E-2"},
		TotalPrice:  350,
		JourneyDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		JourneyTime: "10:00 AM",
		SeatClass:   domain.SeatClassEconomy,
		BookingDate: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Status:      domain.BookingStatusConfirmed,
	}
}

func TestBookingHandler_bookTicket(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := map[string]interface{}{
		"user":        "user-1",
		"flight":      "flight-1",
		"flightName":  "Skyline Airways",
		"flightId":    "SL-101",
		"departure":   "New York",
		"destination": "Los Angeles",
		"email":       "john@example.com",
		"mobile":      "1234567890",
		"passengers":  []map[string]interface{}{{"name": "John Doe", "age": 30}, {"name": "Jane Doe", "age": 28}},
		"totalPrice":  350,
		"journeyDate": "2026-09-10",
		"journeyTime": "10:00 AM",
		"seatClass":   "economy",
	}
	payload, _ := json.Marshal(body)
	c.Request = httptest.NewRequest("POST", "/book-ticket", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("BookTicket", c.Request.Context(), mock.AnythingOfType("booking.BookTicketInput")).
		Return(sampleBooking(), nil)

	handler.bookTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
		Booking struct {
			ID     string `json:"_id"`
			Seats  string `json:"seats"`
			Status string `json:"bookingStatus"`
		} `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking successful!", resp.Message)
	assert.Equal(t, "booking-1", resp.Booking.ID)
	assert.Equal(t, "E-1, E-2", resp.Booking.Seats)
	assert.Equal(t, "confirmed", resp.Booking.Status)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_bookTicket_InvalidBody(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/book-ticket", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.bookTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "BookTicket", mock.Anything, mock.Anything)
}

func TestBookingHandler_bookTicket_ValidationErrorMapsTo400(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := map[string]interface{}{
		"user":        "user-1",
		"flight":      "flight-1",
		"passengers":  []map[string]interface{}{},
		"journeyDate": "2026-09-10",
		"seatClass":   "economy",
	}
	payload, _ := json.Marshal(body)
	c.Request = httptest.NewRequest("POST", "/book-ticket", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("BookTicket", c.Request.Context(), mock.AnythingOfType("booking.BookTicketInput")).
		Return(nil, domain.NewInvalidRequest("a booking must have at least one passenger"))

	handler.bookTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp["kind"])
}

func TestBookingHandler_cancelTicket(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}
	c.Request = httptest.NewRequest("PUT", "/cancel-ticket/booking-1", nil)

	cancelled := sampleBooking()
	cancelled.Status = domain.BookingStatusCancelled

	mockService.On("CancelTicket", c.Request.Context(), "booking-1").Return(cancelled, nil)

	handler.cancelTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		Booking struct {
			Status string `json:"bookingStatus"`
		} `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking cancelled successfully", resp.Message)
	assert.Equal(t, "cancelled", resp.Booking.Status)
}

func TestBookingHandler_cancelTicket_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("PUT", "/cancel-ticket/missing", nil)

	mockService.On("CancelTicket", c.Request.Context(), "missing").
		Return(nil, domain.NewNotFound("booking missing not found"))

	handler.cancelTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_fetchBookings(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/fetch-bookings", nil)

	mockService.On("ListBookings", c.Request.Context()).Return([]domain.Booking{*sampleBooking()}, nil)

	handler.fetchBookings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "E-1, E-2", resp[0]["seats"])
}

func TestBookingHandler_fetchBooking(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}
	c.Request = httptest.NewRequest("GET", "/fetch-booking/booking-1", nil)

	mockService.On("GetBooking", c.Request.Context(), "booking-1").Return(sampleBooking(), nil)

	handler.fetchBooking(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
