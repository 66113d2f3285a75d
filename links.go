package main

import (
	"fmt"
	"strings"
)

// googleMapsURL opens satellite view zoomed in on lat/lon.
func googleMapsURL(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v&ll=%v,%v&z=17&t=k", lat, lon, lat, lon)
}

func zillowURL(zip string) string {
	return "https://www.zillow.com/homes/for_sale/" + zip
}

// extractZipCode returns the 5-digit ZIP that ends a US address such as
// "123 MAIN ST, CITY, ST, 12345".
func extractZipCode(address string) (string, bool) {
	parts := strings.Split(address, ",")
	words := strings.Fields(parts[len(parts)-1])
	if len(words) == 0 {
		return "", false
	}

	last := words[len(words)-1]
	if len(last) != 5 {
		return "", false
	}
	for _, r := range last {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return last, true
}
