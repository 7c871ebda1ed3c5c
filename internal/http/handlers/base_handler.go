// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/booking"
	"wayfare/internal/modules/flight"
	"wayfare/internal/modules/itinerary"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadSchedule),
		errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, booking.ErrUnknownPickup):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNoDrivers):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeFlightError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, flight.ErrMissingFields), errors.Is(err, flight.ErrBadDate):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, flight.ErrUpstreamTimeout):
		writeError(c, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, flight.ErrUpstream):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}

func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrMissingSteps):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNoFlights), errors.Is(err, itinerary.ErrNoHotels):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, itinerary.ErrDownstream):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "failed to process travel plan: "+err.Error())
	}
}
