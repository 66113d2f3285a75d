package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"k8s.io/utils/ptr"
)

// FindNearestStation asks the NWS which observation stations serve the grid
// point at lat/lon and returns the first (nearest) one.
func (c *Client) FindNearestStation(ctx context.Context, lat, lon float64) (Station, error) {
	// The points endpoint redirects anything more precise than four decimals.
	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.endpoints.NWS, lat, lon)

	var point struct {
		Properties struct {
			ObservationStations string `json:"observationStations"`
			Forecast            string `json:"forecast"`
			RelativeLocation    *struct {
				Properties struct {
					City  string `json:"city"`
					State string `json:"state"`
				} `json:"properties"`
			} `json:"relativeLocation"`
		} `json:"properties"`
	}
	if err := c.getJSON(ctx, "NWS Points API", pointsURL, &point); err != nil {
		return Station{}, err
	}

	area := "the specified location"
	if rl := point.Properties.RelativeLocation; rl != nil && rl.Properties.City != "" {
		area = fmt.Sprintf("%s, %s", rl.Properties.City, rl.Properties.State)
	}

	if point.Properties.ObservationStations == "" {
		return Station{}, fmt.Errorf("%w: no observation stations listed for %s", ErrNoMatch, area)
	}

	var stations struct {
		Features []struct {
			Properties struct {
				StationIdentifier string `json:"stationIdentifier"`
				Name              string `json:"name"`
			} `json:"properties"`
			Geometry *struct {
				Coordinates []float64 `json:"coordinates"` // [lon, lat]
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := c.getJSON(ctx, "NWS Stations API", point.Properties.ObservationStations, &stations); err != nil {
		return Station{}, err
	}

	if len(stations.Features) == 0 {
		return Station{}, fmt.Errorf("%w: no observation stations found for %s", ErrNoMatch, area)
	}

	first := stations.Features[0]
	station := Station{
		ID:          first.Properties.StationIdentifier,
		Name:        first.Properties.Name,
		ForecastURL: point.Properties.Forecast,
		Area:        area,
	}
	if g := first.Geometry; g != nil && len(g.Coordinates) == 2 {
		station.Longitude = ptr.To(g.Coordinates[0])
		station.Latitude = ptr.To(g.Coordinates[1])
	}
	return station, nil
}

// LatestObservation returns the most recent observation for a station.
func (c *Client) LatestObservation(ctx context.Context, stationID string) (Observation, error) {
	if stationID == "" {
		return Observation{}, errors.New("station ID is unknown or no station was found")
	}
	u := fmt.Sprintf("%s/stations/%s/observations/latest", c.endpoints.NWS, url.PathEscape(stationID))

	var resp struct {
		Properties *Observation `json:"properties"`
	}
	if err := c.getJSON(ctx, "NWS Observations API", u, &resp); err != nil {
		return Observation{}, err
	}
	if resp.Properties == nil {
		return Observation{}, fmt.Errorf("observation properties are missing in the response for station %s", stationID)
	}
	return *resp.Properties, nil
}

// Forecast fetches the periods of a gridpoint forecast. forecastURL comes
// from FindNearestStation.
func (c *Client) Forecast(ctx context.Context, forecastURL string) ([]ForecastPeriod, error) {
	if forecastURL == "" {
		return nil, errors.New("forecast URL not available for this location")
	}

	var resp struct {
		Properties struct {
			Periods []ForecastPeriod `json:"periods"`
		} `json:"properties"`
	}
	if err := c.getJSON(ctx, "NWS Forecast API", forecastURL, &resp); err != nil {
		return nil, err
	}
	return resp.Properties.Periods, nil
}
