// README: Cab booking handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/booking"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

// Book handles POST /cabs/book.
func (h *BookingHandler) Book(c *gin.Context) {
	var req booking.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Scheduled == "" || req.Airport == "" || req.DropLocation == "" {
		writeError(c, http.StatusBadRequest, "missing fields: scheduled, airport, cab_drop_location")
		return
	}

	result, err := h.booking.Book(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
