// README: Per-class ride estimate value object.
package estimate

import "wayfare/internal/types"

// Estimate is one ride class's price band for a trip. Generated fresh per
// request and never persisted.
type Estimate struct {
	Low       float64         `json:"low"`
	High      float64         `json:"high"`
	Duration  int             `json:"duration"` // seconds
	Distance  float64         `json:"distance"` // miles
	Surge     float64         `json:"surge"`
	RideClass types.RideClass `json:"ride_type"`
}

// ByClass holds exactly one estimate per known ride class.
type ByClass map[types.RideClass]Estimate

// List returns estimates in canonical class order for wire responses.
func (b ByClass) List() []Estimate {
	out := make([]Estimate, 0, len(b))
	for _, c := range types.AllRideClasses {
		if e, ok := b[c]; ok {
			out = append(out, e)
		}
	}
	return out
}
