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
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, spec domain.FlightSpec) (*domain.Flight, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, flightID string, spec domain.FlightSpec) (*domain.Flight, error) {
	args := m.Called(ctx, flightID, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func sampleFlight() *domain.Flight {
	return &domain.Flight{
		ID:            "flight-1",
		FlightName:    "Skyline Airways",
		FlightID:      "SL-101",
		Origin:        "New York",
		Destination:   "Los Angeles",
		DepartureTime: time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 10, 16, 0, 0, 0, time.UTC),
		BasePrice:     175,
		TotalSeats:    100,
	}
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/fetch-flights", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.Flight{*sampleFlight()}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "flight-1"}}
	c.Request = httptest.NewRequest("GET", "/fetch-flight/flight-1", nil)

	mockService.On("GetByID", c.Request.Context(), "flight-1").Return(sampleFlight(), nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "flight-1", resp["_id"])
	assert.Equal(t, "SL-101", resp["flightId"])
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/fetch-flight/missing", nil)

	mockService.On("GetByID", c.Request.Context(), "missing").
		Return(nil, domain.NewNotFound("flight missing not found"))

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_add(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	payload, _ := json.Marshal(map[string]interface{}{
		"flightName":    "Skyline Airways",
		"flightId":      "SL-101",
		"origin":        "New York",
		"destination":   "Los Angeles",
		"departureTime": "2026-09-10T10:00:00Z",
		"arrivalTime":   "2026-09-10T16:00:00Z",
		"basePrice":     175,
		"totalSeats":    100,
	})
	c.Request = httptest.NewRequest("POST", "/add-flight", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("domain.FlightSpec")).
		Return(sampleFlight(), nil)

	handler.add(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_add_Duplicate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	payload, _ := json.Marshal(map[string]interface{}{"flightId": "SL-101"})
	c.Request = httptest.NewRequest("POST", "/add-flight", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("domain.FlightSpec")).
		Return(nil, domain.NewConflict("flight SL-101 already exists"))

	handler.add(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFlightHandler_update_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	payload, _ := json.Marshal(map[string]interface{}{"flightId": "SL-404"})
	c.Request = httptest.NewRequest("PUT", "/update-flight", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Update", c.Request.Context(), "SL-404", mock.AnythingOfType("domain.FlightSpec")).
		Return(nil, domain.NewNotFound("flight SL-404 not found"))

	handler.update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
