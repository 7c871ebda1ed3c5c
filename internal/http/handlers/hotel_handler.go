// README: Hotel lookup handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/hotel"
)

type HotelHandler struct {
	hotels *hotel.Service
}

func NewHotelHandler(svc *hotel.Service) *HotelHandler {
	return &HotelHandler{hotels: svc}
}

// Search handles POST /hotels. An unknown city is a 200 with an empty list;
// the controller decides whether that is fatal.
func (h *HotelHandler) Search(c *gin.Context) {
	var req hotel.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, h.hotels.Search(req))
}
