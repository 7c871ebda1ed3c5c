// README: Availability index; per-location per-class driver pools generated at startup.
package fleet

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"wayfare/internal/types"
)

var ErrNoDrivers = errors.New("no drivers available")

var (
	firstNames = []string{"John", "Sarah", "Mike", "Emily", "David", "Lisa", "Robert",
		"Jennifer", "James", "Patricia", "William", "Elizabeth"}
	lastNames     = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia"}
	platePrefixes = []string{"ABC", "XYZ", "DEF"}

	carsByClass = map[types.RideClass][]string{
		types.ClassEconomy:      {"Toyota Camry", "Honda Accord", "Nissan Altima"},
		types.ClassPremiumLarge: {"Chevrolet Suburban", "Ford Explorer", "Honda Pilot"},
		types.ClassComfort:      {"Toyota Avalon", "Hyundai Sonata", "Volkswagen Passat"},
		types.ClassPremiumBlack: {"Lincoln Town Car", "Cadillac XTS", "Mercedes-Benz E-Class"},
	}
)

var iataPattern = regexp.MustCompile(`\(([A-Z]{3})\)`)

// Index holds the per-location per-class driver pools. Read-only after New.
type Index struct {
	mu    sync.RWMutex
	pools map[string]map[types.RideClass][]Driver
	rng   *rand.Rand
}

// New generates perLocation drivers for every given location. Class assignment
// is weighted toward economy; each driver belongs to exactly one class pool.
func New(locations []string, perLocation int, rng *rand.Rand) *Index {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	idx := &Index{
		pools: make(map[string]map[types.RideClass][]Driver, len(locations)),
		rng:   rng,
	}
	for _, loc := range locations {
		pools := make(map[types.RideClass][]Driver, len(types.AllRideClasses))
		for _, c := range types.AllRideClasses {
			pools[c] = nil
		}
		code := iataCode(loc)
		for i := 0; i < perLocation; i++ {
			class := idx.pickClass()
			cars := carsByClass[class]
			pools[class] = append(pools[class], Driver{
				ID:           fmt.Sprintf("%s-%d-%d", code, i+1, 100+rng.Intn(900)),
				Name:         firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
				Rating:       round1(4.5 + rng.Float64()*0.5),
				Car:          cars[rng.Intn(len(cars))],
				LicensePlate: fmt.Sprintf("%s%d", platePrefixes[rng.Intn(len(platePrefixes))], 1000+rng.Intn(9000)),
				Phone:        fmt.Sprintf("+1%d%d", 200+rng.Intn(800), 1000000+rng.Intn(9000000)),
				ETA:          2 + rng.Intn(14),
				Location:     loc,
			})
		}
		idx.pools[loc] = pools
	}
	return idx
}

// NewFromPools builds an index from explicit pools, bypassing generation.
// Used where exact class coverage matters more than generated variety.
func NewFromPools(pools map[string]map[types.RideClass][]Driver, rng *rand.Rand) *Index {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	idx := &Index{
		pools: make(map[string]map[types.RideClass][]Driver, len(pools)),
		rng:   rng,
	}
	for loc, classes := range pools {
		cp := make(map[types.RideClass][]Driver, len(types.AllRideClasses))
		for _, c := range types.AllRideClasses {
			cp[c] = append([]Driver(nil), classes[c]...)
		}
		idx.pools[loc] = cp
	}
	return idx
}

// pickClass draws a ride class with weights 0.40/0.25/0.20/0.15 for
// economy/premium_large/comfort/premium_black.
func (idx *Index) pickClass() types.RideClass {
	v := idx.rng.Float64()
	switch {
	case v < 0.40:
		return types.ClassEconomy
	case v < 0.65:
		return types.ClassPremiumLarge
	case v < 0.85:
		return types.ClassComfort
	default:
		return types.ClassPremiumBlack
	}
}

// DriversAt returns the pool for a location and class. An empty result is a
// valid, non-error outcome; callers decide whether that is fatal.
func (idx *Index) DriversAt(location string, class types.RideClass) []Driver {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	pools, ok := idx.pools[location]
	if !ok {
		return nil
	}
	return pools[class]
}

// PickRandom selects one driver uniformly at random. It fails only on an
// empty pool; callers are expected to check availability first.
func (idx *Index) PickRandom(drivers []Driver) (Driver, error) {
	if len(drivers) == 0 {
		return Driver{}, ErrNoDrivers
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return drivers[idx.rng.Intn(len(drivers))], nil
}

// iataCode derives a short code for driver IDs: an explicit "(XXX)" tag wins,
// then capitalised initials for International airports, then a name prefix.
// Two-rune words count toward the initials so abbreviated middle names
// contribute ("John F. Kennedy International" yields JFK, not JKI).
func iataCode(airport string) string {
	if m := iataPattern.FindStringSubmatch(airport); m != nil {
		return m[1]
	}
	if airport == "Indira Gandhi International" {
		return "DEL"
	}
	if strings.Contains(airport, "International") {
		var initials []rune
		for _, word := range strings.Fields(airport) {
			r := []rune(word)
			if len(r) >= 2 && unicode.IsUpper(r[0]) {
				initials = append(initials, r[0])
			}
			if len(initials) == 3 {
				break
			}
		}
		if len(initials) == 3 {
			return strings.ToUpper(string(initials))
		}
	}
	prefix := []rune(airport)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return strings.ToUpper(string(prefix))
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
