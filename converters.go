package main

import (
	"fmt"
	"time"
)

// CelsiusToFahrenheit converts temperature from Celsius to Fahrenheit
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// MpsToMph converts meters per second to miles per hour
func MpsToMph(mps float64) float64 {
	return mps * 2.23694
}

// KphToMph converts kilometers per hour to miles per hour
func KphToMph(kph float64) float64 {
	return kph * 0.621371
}

// MetersToFeet converts meters to feet
func MetersToFeet(m float64) float64 {
	return m * 3.28084
}

// MetersToMiles converts meters to statute miles
func MetersToMiles(m float64) float64 {
	return m * 0.000621371
}

// PascalsToInHg converts pressure from pascals to inches of mercury
func PascalsToInHg(pa float64) float64 {
	return pa * 0.0002953
}

// windSpeedMph converts an NWS wind quantity to mph. Observations are
// reported in km/h; older stations still send m/s.
func windSpeedMph(q Quantity) (float64, bool) {
	v, ok := q.Get()
	if !ok {
		return 0, false
	}
	switch q.UnitCode {
	case unitKilometersPerHour:
		return KphToMph(v), true
	default:
		return MpsToMph(v), true
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// Calculate the relative time string
func relativeTimeString(t time.Time) string {
	diff := now().Sub(t)

	// Convert to minutes for easier comparisons
	minutes := int(diff.Minutes())

	if diff < 0 {
		return "(in the future)"
	} else if minutes < 1 {
		return "(just now)"
	} else if minutes < 60 {
		return fmt.Sprintf("(%d minutes ago)", minutes)
	} else if minutes < 1440 { // less than 24 hours
		hours := minutes / 60
		mins := minutes % 60
		if mins == 0 {
			return fmt.Sprintf("(%d hours ago)", hours)
		}
		return fmt.Sprintf("(%d hours, %d minutes ago)", hours, mins)
	} else {
		days := minutes / 1440
		hours := (minutes % 1440) / 60
		if hours == 0 {
			return fmt.Sprintf("(%d days ago)", days)
		}
		return fmt.Sprintf("(%d days, %d hours ago)", days, hours)
	}
}
