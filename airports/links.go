package airports

import "fmt"

// FlightTrackerURL returns the Flightradar24 page for an airport code.
func FlightTrackerURL(code string) string {
	return fmt.Sprintf("https://www.flightradar24.com/airport/%s", normalizeCode(code))
}
