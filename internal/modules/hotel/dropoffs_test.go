package hotel

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"

	"wayfare/internal/modules/location"
	"wayfare/internal/types"
)

func TestRegisterDropoffs(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	registry := location.NewRegistry(rng)
	catalog := NewCatalog(3, rng)

	n := RegisterDropoffs(registry, catalog, rng)
	if n == 0 {
		t.Fatal("no drop-offs registered")
	}

	h := catalog.byCity["Boston"][0]
	name := h.Name + ", " + h.Address

	pt, display := registry.ResolveDropoff(context.Background(), name, types.Point{})
	if strings.HasSuffix(display, location.ApproximatedSuffix) {
		t.Fatalf("catalog hotel must resolve exactly, got %q", display)
	}

	anchor, ok := registry.AirportCoordinate("Boston Airport")
	if !ok {
		t.Fatal("missing city airport anchor")
	}
	if math.Abs(pt.Lat-anchor.Lat) > 0.051 || math.Abs(pt.Lng-anchor.Lng) > 0.051 {
		t.Errorf("drop-off %+v too far from airport anchor %+v", pt, anchor)
	}
}

func TestAirportForCity(t *testing.T) {
	airports := []string{"Boston Airport", "Miami International Airport", "Logan International"}
	if got, ok := airportForCity(airports, "Miami"); !ok || got != "Miami International Airport" {
		t.Errorf("got %q, %v", got, ok)
	}
	if _, ok := airportForCity(airports, "Gotham"); ok {
		t.Error("unknown city must not match")
	}
}
