// README: Driver record anchored to an airport location.
package fleet

// Driver is generated once at process start. A booking never mutates or
// removes a driver; pools are effectively infinite and reusable.
type Driver struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	Car          string  `json:"car"`
	LicensePlate string  `json:"license_plate"`
	Phone        string  `json:"phone"`
	ETA          int     `json:"eta"` // minutes to reach the passenger
	Location     string  `json:"current_location_airport"`
}
