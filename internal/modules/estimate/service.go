// README: Estimate generator; planar distance scaled to road miles, per-class fare bands.
package estimate

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"wayfare/internal/types"
)

const (
	// degreesToRoadMiles approximates road distance from planar coordinate
	// distance. No geodesic correction: the estimator has no real-world
	// fidelity and the constant only needs to produce plausible magnitudes.
	degreesToRoadMiles = 70.0
	milesToSeconds     = 120.0

	// Floors prevent degenerate zero-price trips for same-point requests.
	minDistanceMiles = 0.1
	minDurationSecs  = 180

	pickupFee   = 3.0
	perMileRate = 1.5
)

var classMultipliers = map[types.RideClass]float64{
	types.ClassEconomy:      1.0,
	types.ClassPremiumLarge: 1.5,
	types.ClassComfort:      1.3,
	types.ClassPremiumBlack: 2.5,
}

var surgeLevels = []float64{1.0, 1.2, 1.5, 2.0}

type Generator struct {
	// mu guards rng; math/rand sources are not safe for concurrent use and
	// estimates are generated on every request.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Estimate produces one entry per known ride class for the given trip. Class
// entries are independent; callers must not rely on shared surge levels.
func (g *Generator) Estimate(origin, dest types.Point) ByClass {
	dLat := dest.Lat - origin.Lat
	dLng := dest.Lng - origin.Lng
	distance := math.Sqrt(dLat*dLat+dLng*dLng) * degreesToRoadMiles
	duration := distance * milesToSeconds

	if distance < minDistanceMiles {
		distance = minDistanceMiles
		duration = minDurationSecs
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make(ByClass, len(types.AllRideClasses))
	for _, class := range types.AllRideClasses {
		base := (pickupFee + distance*perMileRate) * classMultipliers[class]
		out[class] = Estimate{
			Low:       round2(base * 0.9),
			High:      round2(base * 1.1),
			Duration:  int(duration * (0.9 + g.rng.Float64()*0.2)),
			Distance:  round1(distance),
			Surge:     surgeLevels[g.rng.Intn(len(surgeLevels))],
			RideClass: class,
		}
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
