package main

import (
	"math"
	"sort"
)

// earthRadiusMiles is the mean radius used by the haversine formula.
const earthRadiusMiles = 3958.8

// Position represents a geographic coordinate
type Position struct {
	Latitude  float64
	Longitude float64
}

// degreesToRadians converts degrees to radians
func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// calculateDistance uses the Haversine formula to determine the distance between two points
func calculateDistance(pos1, pos2 Position) float64 {
	lat1 := degreesToRadians(pos1.Latitude)
	lon1 := degreesToRadians(pos1.Longitude)
	lat2 := degreesToRadians(pos2.Latitude)
	lon2 := degreesToRadians(pos2.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// nearestTideStation returns the station closest to origin and its distance.
// ok is false when stations is empty.
func nearestTideStation(origin Position, stations []TideStation) (station TideStation, distance float64, ok bool) {
	distance = math.Inf(1)
	for _, s := range stations {
		d := calculateDistance(origin, Position{Latitude: s.Latitude, Longitude: s.Longitude})
		if d < distance {
			station, distance, ok = s, d, true
		}
	}
	return station, distance, ok
}

// withinRadius keeps the quakes no farther than radiusMiles from origin,
// fills in their distance, and sorts them nearest first.
func withinRadius(origin Position, quakes []Earthquake, radiusMiles float64) []Earthquake {
	var nearby []Earthquake
	for _, q := range quakes {
		q.DistanceMiles = calculateDistance(origin, Position{Latitude: q.Latitude, Longitude: q.Longitude})
		if q.DistanceMiles <= radiusMiles {
			nearby = append(nearby, q)
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMiles < nearby[j].DistanceMiles
	})
	return nearby
}
