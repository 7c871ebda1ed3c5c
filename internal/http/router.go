// README: Router construction for the four services.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wayfare/internal/http/handlers"
	"wayfare/internal/http/middleware"
	"wayfare/internal/modules/booking"
	"wayfare/internal/modules/flight"
	"wayfare/internal/modules/hotel"
	"wayfare/internal/modules/itinerary"
)

// newEngine builds a gin engine with the shared middleware stack.
func newEngine(service string, logger *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.Recovery(logger),
		middleware.Logging(service, logger),
		middleware.CORS(),
	)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return engine
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// NewFlightRouter serves the flight search agent.
func NewFlightRouter(svc *flight.Service, logger *slog.Logger) http.Handler {
	engine := newEngine("flight", logger)

	h := handlers.NewFlightHandler(svc)
	engine.POST("/flights/search", h.Search)
	engine.POST("/flights/search/all", h.SearchAll)
	engine.GET("/flights/health", healthHandler)

	return engine
}

// NewHotelRouter serves the hotel lookup agent.
func NewHotelRouter(svc *hotel.Service, logger *slog.Logger) http.Handler {
	engine := newEngine("hotel", logger)

	h := handlers.NewHotelHandler(svc)
	engine.POST("/hotels", h.Search)
	engine.GET("/hotels/health", healthHandler)

	return engine
}

// NewCabRouter serves the cab booking agent.
func NewCabRouter(svc *booking.Service, logger *slog.Logger) http.Handler {
	engine := newEngine("cab", logger)

	h := handlers.NewBookingHandler(svc)
	engine.POST("/cabs/book", h.Book)
	engine.GET("/api/health", healthHandler)

	return engine
}

// NewControllerRouter serves the itinerary controller.
func NewControllerRouter(svc *itinerary.Service, logger *slog.Logger) http.Handler {
	engine := newEngine("controller", logger)

	h := handlers.NewPlanHandler(svc)
	engine.POST("/travel/plan", h.Plan)
	engine.GET("/travel/itinerary/latest", h.Latest)
	engine.GET("/travel/health", healthHandler)

	return engine
}
