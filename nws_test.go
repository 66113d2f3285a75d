package main

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bostonLat = 42.3601
	bostonLon = -71.0589
)

const stationsBody = `{
  "features": [
    {
      "geometry": {"type": "Point", "coordinates": [-71.0097, 42.3606]},
      "properties": {"stationIdentifier": "KBOS", "name": "Boston, Logan International Airport"}
    },
    {
      "geometry": {"type": "Point", "coordinates": [-71.2892, 42.4699]},
      "properties": {"stationIdentifier": "KBED", "name": "Bedford, Hanscom Field"}
    }
  ]
}`

const observationBody = `{
  "properties": {
    "timestamp": "2025-05-20T14:54:00+00:00",
    "textDescription": "Mostly Cloudy",
    "temperature": {"unitCode": "wmoUnit:degC", "value": 20},
    "dewpoint": {"unitCode": "wmoUnit:degC", "value": 10},
    "heatIndex": {"unitCode": "wmoUnit:degC", "value": null},
    "windChill": {"unitCode": "wmoUnit:degC", "value": null},
    "windDirection": {"unitCode": "wmoUnit:degree_(angle)", "value": 250},
    "windSpeed": {"unitCode": "wmoUnit:km_h-1", "value": 18.36},
    "windGust": {"unitCode": "wmoUnit:km_h-1", "value": null},
    "relativeHumidity": {"unitCode": "wmoUnit:percent", "value": 52.5},
    "visibility": {"unitCode": "wmoUnit:m", "value": 16090},
    "barometricPressure": {"unitCode": "wmoUnit:Pa", "value": 101590},
    "cloudLayers": [
      {"base": {"unitCode": "wmoUnit:m", "value": 1520}, "amount": "BKN"},
      {"base": {"unitCode": "wmoUnit:m", "value": 7620}, "amount": "OVC"}
    ]
  }
}`

const forecastBody = `{
  "properties": {
    "periods": [
      {"name": "This Afternoon", "temperature": 68, "temperatureUnit": "F", "windSpeed": "10 mph",
       "windDirection": "SW", "shortForecast": "Partly Sunny", "detailedForecast": "Partly sunny, with a high near 68."},
      {"name": "Tonight", "temperature": 52, "temperatureUnit": "F", "windSpeed": "5 mph",
       "windDirection": "W", "shortForecast": "Mostly Clear", "detailedForecast": "Mostly clear, with a low around 52."},
      {"name": "Wednesday", "temperature": 71, "temperatureUnit": "F", "windSpeed": "5 to 10 mph",
       "windDirection": "NW", "shortForecast": "Sunny", "detailedForecast": "Sunny, with a high near 71."}
    ]
  }
}`

// nwsMux serves a points answer for Boston whose linked URLs stay on the
// test server. stations is the body returned for the station list.
func nwsMux(stations string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /nws/points/{coords}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("coords") != "42.3601,-71.0589" {
			http.Error(w, `{"title":"Invalid Parameter"}`, http.StatusNotFound)
			return
		}
		base := "http://" + r.Host + "/nws"
		fmt.Fprintf(w, `{
		  "properties": {
		    "forecast": "%s/gridpoints/BOX/71,90/forecast",
		    "observationStations": "%s/gridpoints/BOX/71,90/stations",
		    "relativeLocation": {"properties": {"city": "Boston", "state": "MA"}}
		  }
		}`, base, base)
	})
	serveJSON(mux, "GET /nws/gridpoints/BOX/71,90/stations", stations)
	serveJSON(mux, "GET /nws/gridpoints/BOX/71,90/forecast", forecastBody)
	serveJSON(mux, "GET /nws/stations/KBOS/observations/latest", observationBody)
	serveJSON(mux, "GET /nws/stations/KNUL/observations/latest", `{"properties": null}`)
	return mux
}

func TestFindNearestStation(t *testing.T) {
	t.Parallel()

	client, cfg := newTestClient(t, nwsMux(stationsBody))
	station, err := client.FindNearestStation(context.Background(), bostonLat, bostonLon)
	require.NoError(t, err)

	assert.Equal(t, "KBOS", station.ID)
	assert.Equal(t, "Boston, Logan International Airport", station.Name)
	assert.Equal(t, "Boston, MA", station.Area)
	assert.Equal(t, cfg.Endpoints.NWS+"/gridpoints/BOX/71,90/forecast", station.ForecastURL)
	require.True(t, station.HasCoordinates())
	assert.InDelta(t, 42.3606, *station.Latitude, 1e-9)
	assert.InDelta(t, -71.0097, *station.Longitude, 1e-9)
}

func TestFindNearestStation_noCoordinates(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, nwsMux(`{"features": [{"geometry": null,
	  "properties": {"stationIdentifier": "KBOS", "name": "Boston"}}]}`))
	station, err := client.FindNearestStation(context.Background(), bostonLat, bostonLon)
	require.NoError(t, err)

	assert.Equal(t, "KBOS", station.ID)
	assert.False(t, station.HasCoordinates())
}

func TestFindNearestStation_noStations(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, nwsMux(`{"features": []}`))
	_, err := client.FindNearestStation(context.Background(), bostonLat, bostonLon)

	require.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), "Boston, MA")
}

func TestFindNearestStation_outsideCoverage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, nwsMux(stationsBody))
	_, err := client.FindNearestStation(context.Background(), 51.5074, -0.1278)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NWS Points API", apiErr.Service)
}

func TestLatestObservation(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, nwsMux(stationsBody))
	obs, err := client.LatestObservation(context.Background(), "KBOS")
	require.NoError(t, err)

	assert.Equal(t, "Mostly Cloudy", obs.TextDescription)

	temp, ok := obs.Temperature.Get()
	assert.True(t, ok)
	assert.InDelta(t, 20.0, temp, 1e-9)

	_, ok = obs.HeatIndex.Get()
	assert.False(t, ok, "null values are unreported")

	assert.Equal(t, unitKilometersPerHour, obs.WindSpeed.UnitCode)
	require.Len(t, obs.CloudLayers, 2)
	assert.Equal(t, "BKN", obs.CloudLayers[0].Amount)

	observed, ok := obs.ObservedAt()
	require.True(t, ok)
	assert.Equal(t, 14, observed.UTC().Hour())
}

func TestLatestObservation_errors(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, nwsMux(stationsBody))
	ctx := context.Background()

	_, err := client.LatestObservation(ctx, "")
	assert.ErrorContains(t, err, "station ID is unknown")

	_, err = client.LatestObservation(ctx, "KNUL")
	assert.ErrorContains(t, err, "observation properties are missing")

	_, err = client.LatestObservation(ctx, "KXYZ")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestForecast(t *testing.T) {
	t.Parallel()

	client, cfg := newTestClient(t, nwsMux(stationsBody))
	ctx := context.Background()

	periods, err := client.Forecast(ctx, cfg.Endpoints.NWS+"/gridpoints/BOX/71,90/forecast")
	require.NoError(t, err)
	require.Len(t, periods, 3)
	assert.Equal(t, "This Afternoon", periods[0].Name)
	assert.InDelta(t, 68.0, periods[0].Temperature, 1e-9)
	assert.Equal(t, "F", periods[0].TemperatureUnit)

	_, err = client.Forecast(ctx, "")
	assert.ErrorContains(t, err, "forecast URL not available")
}
