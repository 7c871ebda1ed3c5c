// README: Drop-off registration for catalog hotels, anchored near city airports.
package hotel

import (
	"fmt"
	"math/rand"
	"strings"

	"wayfare/internal/modules/location"
	"wayfare/internal/types"
)

// RegisterDropoffs seeds the registry with every catalog hotel under its
// "Name, Address" drop-off string, placed within 0.05 degrees of the city's
// airport. Cities without a matching airport are skipped; their hotels still
// resolve through the approximation path. Returns the number registered.
func RegisterDropoffs(registry *location.Registry, catalog *Catalog, rng *rand.Rand) int {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	airports := registry.AirportNames()
	registered := 0
	for city, hotels := range catalog.byCity {
		airport, ok := airportForCity(airports, city)
		if !ok {
			continue
		}
		anchor, ok := registry.AirportCoordinate(airport)
		if !ok {
			continue
		}
		for _, h := range hotels {
			registry.RegisterHotel(fmt.Sprintf("%s, %s", h.Name, h.Address), types.Point{
				Lat: anchor.Lat + (rng.Float64()*0.1 - 0.05),
				Lng: anchor.Lng + (rng.Float64()*0.1 - 0.05),
			})
			registered++
		}
	}
	return registered
}

// airportForCity matches a catalog city to its airport by name prefix
// ("Boston" -> "Boston Airport", "Miami" -> "Miami International Airport").
func airportForCity(airports []string, city string) (string, bool) {
	for _, name := range airports {
		if strings.HasPrefix(name, city) {
			return name, true
		}
	}
	return "", false
}
