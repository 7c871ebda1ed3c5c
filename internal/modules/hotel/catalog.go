// README: In-memory hotel catalog, generated once at startup.
package hotel

import (
	"fmt"
	"math/rand"
)

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
	"Boston", "El Paso", "Nashville", "Detroit", "Oklahoma City",
	"Portland", "Las Vegas", "Memphis", "Louisville", "Baltimore",
	"Milwaukee", "Albuquerque", "Tucson", "Fresno", "Sacramento",
	"Kansas City", "Mesa", "Atlanta", "Omaha", "Colorado Springs",
	"Raleigh", "Miami", "Virginia Beach", "Long Beach", "Oakland",
	"Minneapolis", "Tulsa", "Wichita", "New Orleans", "Arlington",
}

var (
	namePrefixes = []string{"Grand", "Comfort", "Elite", "Royal", "City", "Star", "Prime", "Luxury", "Inn", "Suite"}
	nameSuffixes = []string{"Hotel", "Resort", "Inn", "Suites", "Place", "Lodge", "Manor", "House", "Gardens"}
	streetNames  = []string{"Main", "Oak", "Pine", "Elm", "Maple"}
	streetTypes  = []string{"St", "Ave", "Blvd", "Rd", "Ln", "Dr"}
)

// Catalog holds the generated inventory keyed by city. Read-only after
// construction, so no locking.
type Catalog struct {
	byCity map[string][]Hotel
}

// NewCatalog generates perCity hotels for every known city. Names, ratings,
// addresses and price bands are synthetic but stable for the life of the
// process.
func NewCatalog(perCity int, rng *rand.Rand) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	byCity := make(map[string][]Hotel, len(cities))
	for _, city := range cities {
		hotels := make([]Hotel, 0, perCity)
		for i := 0; i < perCity; i++ {
			hotels = append(hotels, generateHotel(city, rng))
		}
		byCity[city] = hotels
	}
	return &Catalog{byCity: byCity}
}

func generateHotel(city string, rng *rand.Rand) Hotel {
	base := 50 + rng.Intn(451)
	low := base - rng.Intn(41)
	high := base + 50 + rng.Intn(101)
	return Hotel{
		Name:       fmt.Sprintf("%s %s %d", pick(rng, namePrefixes), pick(rng, nameSuffixes), 1+rng.Intn(100)),
		Rating:     float64(30+rng.Intn(21)) / 10,
		Address:    fmt.Sprintf("%d %s %s, %s", 100+rng.Intn(9900), pick(rng, streetNames), pick(rng, streetTypes), city),
		PriceRange: fmt.Sprintf("$%d - $%d", low, high),
	}
}

func pick(rng *rand.Rand, xs []string) string {
	return xs[rng.Intn(len(xs))]
}
