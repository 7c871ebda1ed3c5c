// README: Handler tests for the hotel lookup endpoint.
package handlers_test

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/handlers"
	"wayfare/internal/modules/hotel"
)

func buildHotelRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := hotel.NewService(hotel.NewCatalog(10, rand.New(rand.NewSource(4))))
	r := gin.New()
	r.POST("/hotels", handlers.NewHotelHandler(svc).Search)
	return r
}

func TestHotels_KnownCity(t *testing.T) {
	r := buildHotelRouter()
	w := doRequest(r, http.MethodPost, "/hotels", map[string]any{
		"cityname":      "Denver",
		"num_of_rooms":  1,
		"checkin_date":  "2026-09-01",
		"checkout_date": "2026-09-03",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp hotel.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp.Hotels) != 10 {
		t.Errorf("expected 10 offers, got %d", len(resp.Hotels))
	}
}

func TestHotels_UnknownCityIsNotAnError(t *testing.T) {
	r := buildHotelRouter()
	w := doRequest(r, http.MethodPost, "/hotels", map[string]any{"cityname": "Gotham"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp hotel.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp.Hotels) != 0 || resp.Message == "" {
		t.Errorf("expected empty list with message, got %+v", resp)
	}
}
