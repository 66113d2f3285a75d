// Package airports holds the worldwide airport reference table: one CSV
// download turned into a read-only lookup keyed by IATA and ICAO codes.
package airports

import (
	"strconv"
	"strings"
)

// Airport is one row of the OurAirports dataset. All fields are kept as the
// source text; nothing is parsed at load time.
type Airport struct {
	ID               string `csv:"id"`
	Ident            string `csv:"ident"`
	Type             string `csv:"type"`
	Name             string `csv:"name"`
	LatitudeDeg      string `csv:"latitude_deg"`
	LongitudeDeg     string `csv:"longitude_deg"`
	ElevationFt      string `csv:"elevation_ft"`
	Continent        string `csv:"continent"`
	ISOCountry       string `csv:"iso_country"`
	ISORegion        string `csv:"iso_region"`
	Municipality     string `csv:"municipality"`
	ScheduledService string `csv:"scheduled_service"`
	GPSCode          string `csv:"gps_code"`
	IATACode         string `csv:"iata_code"`
	LocalCode        string `csv:"local_code"`
	HomeLink         string `csv:"home_link"`
	WikipediaLink    string `csv:"wikipedia_link"`
	Keywords         string `csv:"keywords"`
}

// Coordinates parses the decimal-degree position. ok is false when either
// value is missing or malformed.
func (a Airport) Coordinates() (lat, lon float64, ok bool) {
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(a.LatitudeDeg), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(a.LongitudeDeg), 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// HasScheduledService reports whether the airport has scheduled airline service.
func (a Airport) HasScheduledService() bool {
	return strings.EqualFold(strings.TrimSpace(a.ScheduledService), "yes")
}

// Subdivision returns the part of the ISO region after the country prefix,
// e.g. "MA" for "US-MA".
func (a Airport) Subdivision() string {
	_, sub, found := strings.Cut(a.ISORegion, "-")
	if !found {
		return a.ISORegion
	}
	return sub
}

// normalizeCode is the key form used for every insert and lookup.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
