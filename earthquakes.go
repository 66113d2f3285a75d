package main

import (
	"context"
	"time"
)

// NearbyEarthquakes returns the magnitude 2.5+ events of the past week
// within radiusMiles of lat/lon, nearest first.
func (c *Client) NearbyEarthquakes(ctx context.Context, lat, lon, radiusMiles float64) ([]Earthquake, error) {
	u := c.endpoints.USGS + "/summary/2.5_week.geojson"

	var feed struct {
		Features []struct {
			Properties struct {
				Mag   *float64 `json:"mag"`
				Place string   `json:"place"`
				Time  int64    `json:"time"` // ms since epoch
				URL   string   `json:"url"`
			} `json:"properties"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"` // [lon, lat, depth km]
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := c.getJSON(ctx, "USGS earthquake feed", u, &feed); err != nil {
		return nil, err
	}

	quakes := make([]Earthquake, 0, len(feed.Features))
	for _, f := range feed.Features {
		coords := f.Geometry.Coordinates
		if len(coords) < 2 {
			continue
		}
		q := Earthquake{
			Magnitude: f.Properties.Mag,
			Place:     f.Properties.Place,
			Time:      time.UnixMilli(f.Properties.Time).UTC(),
			URL:       f.Properties.URL,
			Longitude: coords[0],
			Latitude:  coords[1],
		}
		if len(coords) > 2 {
			q.DepthKm = coords[2]
		}
		quakes = append(quakes, q)
	}

	return withinRadius(Position{Latitude: lat, Longitude: lon}, quakes, radiusMiles), nil
}
