package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// censusBenchmark selects the current address ranges in the Census geocoder.
const censusBenchmark = "Public_AR_Current"

// GeocodedAddress is a street address resolved to coordinates.
type GeocodedAddress struct {
	Matched   string
	Latitude  float64
	Longitude float64
}

// GeocodeAddress resolves a one-line US street address with the Census
// geocoder. It returns ErrNoMatch when the geocoder finds nothing.
func (c *Client) GeocodeAddress(ctx context.Context, address string) (GeocodedAddress, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("benchmark", censusBenchmark)
	q.Set("format", "json")
	u := c.endpoints.Census + "/geocoder/locations/onelineaddress?" + q.Encode()

	var result struct {
		Result struct {
			AddressMatches []struct {
				MatchedAddress string `json:"matchedAddress"`
				Coordinates    struct {
					X float64 `json:"x"` // longitude
					Y float64 `json:"y"` // latitude
				} `json:"coordinates"`
			} `json:"addressMatches"`
		} `json:"result"`
	}
	if err := c.getJSON(ctx, "Census geocoder", u, &result); err != nil {
		return GeocodedAddress{}, err
	}

	if len(result.Result.AddressMatches) == 0 {
		return GeocodedAddress{}, fmt.Errorf("%w for address %q", ErrNoMatch, address)
	}

	first := result.Result.AddressMatches[0]
	return GeocodedAddress{
		Matched:   first.MatchedAddress,
		Latitude:  first.Coordinates.Y,
		Longitude: first.Coordinates.X,
	}, nil
}

// Place is the reverse-geocoded description of a coordinate.
type Place struct {
	DisplayName string
	Locality    string
	County      string
	State       string
	Postcode    string
	Country     string
}

// ReverseGeocode describes the place at lat/lon using Nominatim.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (Place, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", fmt.Sprintf("%.6f", lat))
	q.Set("lon", fmt.Sprintf("%.6f", lon))
	u := c.endpoints.Nominatim + "/reverse?" + q.Encode()

	var result struct {
		Error       string `json:"error"`
		DisplayName string `json:"display_name"`
		Address     struct {
			City     string `json:"city"`
			Town     string `json:"town"`
			Village  string `json:"village"`
			Hamlet   string `json:"hamlet"`
			County   string `json:"county"`
			State    string `json:"state"`
			Postcode string `json:"postcode"`
			Country  string `json:"country"`
		} `json:"address"`
	}
	if err := c.getJSON(ctx, "Nominatim", u, &result); err != nil {
		return Place{}, err
	}
	if result.Error != "" {
		return Place{}, fmt.Errorf("%w: %s", ErrNoMatch, result.Error)
	}

	locality := result.Address.City
	for _, alt := range []string{result.Address.Town, result.Address.Village, result.Address.Hamlet} {
		if locality == "" {
			locality = alt
		}
	}

	return Place{
		DisplayName: strings.TrimSpace(result.DisplayName),
		Locality:    locality,
		County:      result.Address.County,
		State:       result.Address.State,
		Postcode:    result.Address.Postcode,
		Country:     result.Address.Country,
	}, nil
}
