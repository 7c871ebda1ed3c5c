// README: Closed ride-class enumeration shared across modules.
package types

import "fmt"

// RideClass is a named service tier. The set is closed: upstream text naming
// anything else must be treated as a parse failure, not a new class.
type RideClass string

const (
	ClassEconomy      RideClass = "economy"
	ClassPremiumLarge RideClass = "premium_large"
	ClassPremiumBlack RideClass = "premium_black"
	ClassComfort      RideClass = "comfort"
)

// AllRideClasses is the canonical ordering used when generating estimates.
var AllRideClasses = []RideClass{ClassEconomy, ClassPremiumLarge, ClassPremiumBlack, ClassComfort}

// ParseRideClass validates a wire string against the closed set.
func ParseRideClass(s string) (RideClass, error) {
	for _, c := range AllRideClasses {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown ride class %q", s)
}
