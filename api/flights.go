package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.Engine) {
	router.GET("/fetch-flights", h.list)
	router.GET("/fetch-flight/:id", h.get)
	router.POST("/add-flight", h.add)
	router.PUT("/update-flight", h.update)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) add(c *gin.Context) {
	var spec domain.FlightSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		writeError(c, domain.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	flight, err := h.service.Create(c.Request.Context(), spec)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Flight added successfully",
		"flight":  flight,
	})
}

func (h *FlightHandler) update(c *gin.Context) {
	var spec domain.FlightSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		writeError(c, domain.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	flight, err := h.service.Update(c.Request.Context(), spec.FlightID, spec)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Flight updated successfully",
		"flight":  flight,
	})
}
