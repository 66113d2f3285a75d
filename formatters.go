package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rmitchellscott/reather/airports"
)

// Color definitions using fatih/color
var (
	labelColor   = color.New(color.FgCyan)
	dateColor    = color.New(color.FgGreen)
	sectionColor = color.New(color.FgBlue)
	linkColor    = color.New(color.FgMagenta)
	highColor    = color.New(color.FgBlue)
	lowColor     = color.New(color.FgYellow)

	// Age-based colors
	freshColor   = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	expiredColor = color.New(color.FgRed)

	// Magnitude-based colors
	minorQuakeColor  = color.New(color.FgGreen)
	strongQuakeColor = color.New(color.FgYellow)
	majorQuakeColor  = color.New(color.FgRed, color.Bold)
)

const notAvailable = "N/A"

// writeField writes "Label: value" on its own line.
func writeField(sb *strings.Builder, label, value string) {
	labelColor.Fprint(sb, label+": ")
	sb.WriteString(value + "\n")
}

// formatQuantity renders a reported value with conv applied, or N/A.
func formatQuantity(q Quantity, conv func(float64) float64, format string) string {
	v, ok := q.Get()
	if !ok {
		return notAvailable
	}
	if conv != nil {
		v = conv(v)
	}
	return fmt.Sprintf(format, v)
}

// getObservationAgeColor returns the appropriate color based on observation age
func getObservationAgeColor(t time.Time) *color.Color {
	minutes := int(now().Sub(t).Minutes())
	if minutes > 90 {
		return expiredColor
	} else if minutes > 60 {
		return warningColor
	}
	return freshColor
}

// formatWind renders direction, speed and gusts. Both direction and speed
// must be reported.
func formatWind(o Observation) string {
	dir, okDir := o.WindDirection.Get()
	speed, okSpeed := windSpeedMph(o.WindSpeed)
	if !okDir || !okSpeed {
		return notAvailable
	}

	wind := fmt.Sprintf("%.0f deg at %.1f mph", dir, speed)
	if gust, ok := windSpeedMph(o.WindGust); ok {
		wind += fmt.Sprintf(" (gusts to %.1f mph)", gust)
	}
	return wind
}

// formatCeiling reports clear skies when any layer says so, else the base of
// the first layer that has one.
func formatCeiling(layers []CloudLayer) string {
	for _, l := range layers {
		if l.Amount == "SKC" || l.Amount == "CLR" {
			return "Clear (>12,000 ft)"
		}
	}
	for _, l := range layers {
		if base, ok := l.Base.Get(); ok {
			return fmt.Sprintf("%.0f ft", MetersToFeet(base))
		}
	}
	return notAvailable
}

// FormatObservation formats the latest observation at a station
func FormatObservation(station Station, o Observation) string {
	var sb strings.Builder

	sectionColor.Fprintf(&sb, "--- Current Conditions at %s (%s) ---\n", station.Name, station.ID)

	if t, ok := o.ObservedAt(); ok {
		labelColor.Fprint(&sb, "Observed: ")
		dateColor.Fprint(&sb, t.UTC().Format("2006-01-02 15:04 UTC"))
		sb.WriteString(" ")
		getObservationAgeColor(t).Fprint(&sb, relativeTimeString(t))
		sb.WriteString("\n")
	}

	writeField(&sb, "Temperature", formatQuantity(o.Temperature, CelsiusToFahrenheit, "%.1f °F"))
	writeField(&sb, "Heat Index", formatQuantity(o.HeatIndex, CelsiusToFahrenheit, "%.1f °F"))
	if _, ok := o.WindChill.Get(); ok {
		writeField(&sb, "Wind Chill", formatQuantity(o.WindChill, CelsiusToFahrenheit, "%.1f °F"))
	}
	writeField(&sb, "Dew Point", formatQuantity(o.Dewpoint, CelsiusToFahrenheit, "%.1f °F"))

	conditions := o.TextDescription
	if conditions == "" {
		conditions = notAvailable
	}
	writeField(&sb, "Conditions", conditions)
	writeField(&sb, "Wind", formatWind(o))
	writeField(&sb, "Humidity", formatQuantity(o.RelativeHumidity, nil, "%.1f %%"))
	writeField(&sb, "Ceiling", formatCeiling(o.CloudLayers))
	writeField(&sb, "Visibility", formatQuantity(o.Visibility, MetersToMiles, "%.1f mi"))
	writeField(&sb, "Pressure", formatQuantity(o.BarometricPressure, PascalsToInHg, "%.2f inHg"))

	return sb.String()
}

// FormatForecast formats up to limit forecast periods
func FormatForecast(station Station, periods []ForecastPeriod, limit int) string {
	var sb strings.Builder

	sectionColor.Fprintf(&sb, "--- Local Forecast for area near %s ---\n", station.Name)
	if len(periods) == 0 {
		sb.WriteString("No forecast periods available for this location.\n")
		return sb.String()
	}

	if limit > len(periods) {
		limit = len(periods)
	}
	for _, p := range periods[:limit] {
		sb.WriteString("\n")
		labelColor.Fprint(&sb, p.Name)
		sb.WriteString(fmt.Sprintf(" (%.0f°%s)\n", p.Temperature, p.TemperatureUnit))

		detail := p.DetailedForecast
		if detail == "" {
			detail = p.ShortForecast
		}
		sb.WriteString(detail + "\n")
	}
	return sb.String()
}

// FormatTides formats high and low tide predictions
func FormatTides(station TideStation, distance float64, events []TideEvent) string {
	var sb strings.Builder

	name := station.Name
	if station.State != "" {
		name += ", " + station.State
	}
	sectionColor.Fprintf(&sb, "--- Tides at %s (%s), %.1f mi away ---\n", name, station.ID, distance)

	if len(events) == 0 {
		sb.WriteString("No tide predictions available for this station.\n")
		return sb.String()
	}

	for _, e := range events {
		dateColor.Fprint(&sb, e.Time.Format("Mon Jan 2 3:04 PM"))
		sb.WriteString("  ")
		if e.High {
			highColor.Fprint(&sb, "High")
		} else {
			lowColor.Fprint(&sb, "Low ")
		}
		sb.WriteString(fmt.Sprintf("  %.2f ft\n", e.HeightFt))
	}
	return sb.String()
}

func getMagnitudeColor(mag float64) *color.Color {
	if mag >= 6 {
		return majorQuakeColor
	} else if mag >= 4 {
		return strongQuakeColor
	}
	return minorQuakeColor
}

// FormatEarthquakes formats the quakes found around an address
func FormatEarthquakes(quakes []Earthquake, radiusMiles float64) string {
	var sb strings.Builder

	sectionColor.Fprintf(&sb, "--- Earthquakes (M2.5+, past week) within %.0f mi ---\n", radiusMiles)
	if len(quakes) == 0 {
		sb.WriteString("No earthquakes found nearby.\n")
		return sb.String()
	}

	for _, q := range quakes {
		if q.Magnitude != nil {
			getMagnitudeColor(*q.Magnitude).Fprintf(&sb, "M%.1f", *q.Magnitude)
		} else {
			sb.WriteString("M?")
		}
		sb.WriteString(fmt.Sprintf("  %s, %.0f mi away\n", q.Place, q.DistanceMiles))

		sb.WriteString("  ")
		dateColor.Fprint(&sb, q.Time.Format("2006-01-02 15:04 UTC"))
		sb.WriteString(" " + relativeTimeString(q.Time))
		sb.WriteString(fmt.Sprintf(", depth %.1f km\n", q.DepthKm))
		if q.URL != "" {
			sb.WriteString("  ")
			linkColor.Fprintln(&sb, q.URL)
		}
	}
	return sb.String()
}

// FormatPlace formats a reverse-geocoded location
func FormatPlace(p Place) string {
	var sb strings.Builder

	sectionColor.Fprintln(&sb, "--- Location Details ---")
	writeField(&sb, "Place", p.DisplayName)
	for _, f := range []struct{ label, value string }{
		{"Locality", p.Locality},
		{"County", p.County},
		{"State", p.State},
		{"Postcode", p.Postcode},
		{"Country", p.Country},
	} {
		if f.value != "" {
			writeField(&sb, f.label, f.value)
		}
	}
	return sb.String()
}

// FormatExternalLinks formats map, real estate and flight links for an
// address. station is nil when no station was found; airportCode is empty
// when the station is not at an airport.
func FormatExternalLinks(addr StoredAddress, station *Station, airportCode string) string {
	var sb strings.Builder

	sectionColor.Fprintln(&sb, "--- External Links (Maps, Flights, Real Estate) ---")
	writeField(&sb, "Address", addr.Address)
	sb.WriteString("  Google Maps: ")
	linkColor.Fprintln(&sb, googleMapsURL(addr.Latitude, addr.Longitude))
	if zip, ok := extractZipCode(addr.Address); ok {
		sb.WriteString("  Zillow: ")
		linkColor.Fprintln(&sb, zillowURL(zip))
	}

	sb.WriteString("\n")
	if station == nil {
		writeField(&sb, "Weather Station", "Unknown Station Name (ID N/A)")
		return sb.String()
	}

	if !station.HasCoordinates() {
		writeField(&sb, "Weather Station",
			fmt.Sprintf("%s (%s) (Coordinates not available for map link)", station.Name, station.ID))
		return sb.String()
	}

	writeField(&sb, "Weather Station", fmt.Sprintf("%s (%s)", station.Name, station.ID))
	sb.WriteString("  Google Maps: ")
	linkColor.Fprintln(&sb, googleMapsURL(*station.Latitude, *station.Longitude))
	if airportCode != "" {
		sb.WriteString("  This weather station is at an airport.\n")
		sb.WriteString("  Flightradar24: ")
		linkColor.Fprintln(&sb, airports.FlightTrackerURL(airportCode))
	}
	return sb.String()
}

// FormatAirport formats one airport record
func FormatAirport(a airports.Airport) string {
	var sb strings.Builder

	labelColor.Fprint(&sb, a.Name)
	codes := []string{}
	if a.IATACode != "" {
		codes = append(codes, a.IATACode)
	}
	if a.Ident != "" {
		codes = append(codes, a.Ident)
	}
	if len(codes) > 0 {
		sb.WriteString(" (" + strings.Join(codes, " / ") + ")")
	}
	sb.WriteString("\n")

	var where []string
	if a.Municipality != "" {
		where = append(where, a.Municipality)
	}
	if sub := a.Subdivision(); sub != "" {
		where = append(where, sub)
	}
	if a.ISOCountry != "" {
		where = append(where, GetCountryName(a.ISOCountry))
	}
	if len(where) > 0 {
		sb.WriteString("  " + strings.Join(where, ", ") + "\n")
	}

	if a.Type != "" {
		sb.WriteString("  Type: " + strings.ReplaceAll(a.Type, "_", " "))
		if a.HasScheduledService() {
			sb.WriteString(", scheduled service")
		}
		sb.WriteString("\n")
	}

	if lat, lon, ok := a.Coordinates(); ok {
		sb.WriteString("  Google Maps: ")
		linkColor.Fprintln(&sb, googleMapsURL(lat, lon))
	}
	if a.IATACode != "" {
		sb.WriteString("  Flightradar24: ")
		linkColor.Fprintln(&sb, airports.FlightTrackerURL(a.IATACode))
	}
	if a.HomeLink != "" {
		sb.WriteString("  Website: ")
		linkColor.Fprintln(&sb, a.HomeLink)
	}
	if a.WikipediaLink != "" {
		sb.WriteString("  Wikipedia: ")
		linkColor.Fprintln(&sb, a.WikipediaLink)
	}
	return sb.String()
}

// FormatAirports formats search results, numbering them
func FormatAirports(list []airports.Airport) string {
	var sb strings.Builder
	for i, a := range list {
		sb.WriteString(fmt.Sprintf("%d. ", i+1))
		sb.WriteString(FormatAirport(a))
	}
	return sb.String()
}
