// README: Travel plan handlers for the controller.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/itinerary"
)

type PlanHandler struct {
	planner *itinerary.Service
}

func NewPlanHandler(svc *itinerary.Service) *PlanHandler {
	return &PlanHandler{planner: svc}
}

// Plan handles POST /travel/plan.
func (h *PlanHandler) Plan(c *gin.Context) {
	var req itinerary.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	it, err := h.planner.Plan(c.Request.Context(), req)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}

// Latest handles GET /travel/itinerary/latest.
func (h *PlanHandler) Latest(c *gin.Context) {
	it, err := h.planner.Latest()
	if err != nil {
		writeJSON(c, http.StatusNotFound, gin.H{"message": "No itinerary generated yet."})
		return
	}
	writeJSON(c, http.StatusOK, it)
}
