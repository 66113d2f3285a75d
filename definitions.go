package main

import (
	"time"

	"k8s.io/utils/ptr"
)

// NWS unit codes that change how a quantity is converted.
const (
	unitKilometersPerHour = "wmoUnit:km_h-1"
	unitMetersPerSecond   = "wmoUnit:m_s-1"
)

// Quantity is an NWS measured value. Value is nil when the station did not
// report it.
type Quantity struct {
	Value    *float64 `json:"value"`
	UnitCode string   `json:"unitCode"`
}

// Get returns the value and whether it was reported.
func (q Quantity) Get() (float64, bool) {
	return ptr.Deref(q.Value, 0), q.Value != nil
}

// CloudLayer is one reported sky layer.
type CloudLayer struct {
	Base   Quantity `json:"base"`
	Amount string   `json:"amount"` // SKC, CLR, FEW, SCT, BKN, OVC
}

// Observation is the latest report from an NWS observation station.
type Observation struct {
	Timestamp          string       `json:"timestamp"`
	TextDescription    string       `json:"textDescription"`
	Temperature        Quantity     `json:"temperature"`
	Dewpoint           Quantity     `json:"dewpoint"`
	HeatIndex          Quantity     `json:"heatIndex"`
	WindChill          Quantity     `json:"windChill"`
	WindDirection      Quantity     `json:"windDirection"`
	WindSpeed          Quantity     `json:"windSpeed"`
	WindGust           Quantity     `json:"windGust"`
	RelativeHumidity   Quantity     `json:"relativeHumidity"`
	Visibility         Quantity     `json:"visibility"`
	BarometricPressure Quantity     `json:"barometricPressure"`
	CloudLayers        []CloudLayer `json:"cloudLayers"`
}

// ObservedAt parses Timestamp; ok is false when it is missing or malformed.
func (o Observation) ObservedAt() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, o.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Station is the observation station nearest to an address, together with
// the forecast URL of the address's grid point.
type Station struct {
	ID          string
	Name        string
	Latitude    *float64
	Longitude   *float64
	ForecastURL string
	// Area is the NWS relative location, e.g. "Bozeman, MT".
	Area string
}

// HasCoordinates reports whether the station position is known.
func (s Station) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// ForecastPeriod is one named period of a gridpoint forecast.
type ForecastPeriod struct {
	Name             string  `json:"name"`
	Temperature      float64 `json:"temperature"`
	TemperatureUnit  string  `json:"temperatureUnit"`
	WindSpeed        string  `json:"windSpeed"`
	WindDirection    string  `json:"windDirection"`
	ShortForecast    string  `json:"shortForecast"`
	DetailedForecast string  `json:"detailedForecast"`
}

// TideStation is a NOAA CO-OPS station with tide predictions.
type TideStation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	State     string  `json:"state"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// TideEvent is a predicted high or low tide.
type TideEvent struct {
	Time     time.Time
	HeightFt float64
	High     bool
}

// Earthquake is one event from the USGS summary feed, with its distance
// from the address it was searched around.
type Earthquake struct {
	Magnitude     *float64
	Place         string
	Time          time.Time
	URL           string
	Latitude      float64
	Longitude     float64
	DepthKm       float64
	DistanceMiles float64
}
