// README: Flight search handlers (filtered and raw passthrough).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/flight"
)

type FlightHandler struct {
	flights *flight.Service
}

func NewFlightHandler(svc *flight.Service) *FlightHandler {
	return &FlightHandler{flights: svc}
}

// Search handles POST /flights/search.
func (h *FlightHandler) Search(c *gin.Context) {
	var req flight.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "no JSON payload provided")
		return
	}

	resp, err := h.flights.Search(c.Request.Context(), req)
	if err != nil {
		writeFlightError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

// SearchAll handles POST /flights/search/all, echoing the upstream payload.
func (h *FlightHandler) SearchAll(c *gin.Context) {
	var req flight.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "no JSON payload provided")
		return
	}

	resp, err := h.flights.SearchAll(c.Request.Context(), req)
	if err != nil {
		writeFlightError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
