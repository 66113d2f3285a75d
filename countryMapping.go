// countryMapping.go
package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rmitchellscott/reather/logging"
)

// CountryCode represents a mapping between country code and name
type CountryCode struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

//go:embed assets/countries.json
var embeddedCountries embed.FS

var (
	countryCodeMap     map[string]string
	countryCodeMapErr  error
	countryCodeMapOnce sync.Once
)

// loadCountryCodeMap parses the embedded ISO 3166-1 alpha-2 table
func loadCountryCodeMap() (map[string]string, error) {
	fileContent, err := embeddedCountries.ReadFile("assets/countries.json")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded countries file: %w", err)
	}

	var countries []CountryCode
	if err := json.Unmarshal(fileContent, &countries); err != nil {
		return nil, fmt.Errorf("error parsing embedded countries file: %w", err)
	}

	m := make(map[string]string, len(countries))
	for _, country := range countries {
		m[country.Code] = country.Name
	}
	logging.Debug("Loaded country codes", "count", len(m))
	return m, nil
}

// GetCountryName returns the full country name for a given country code
func GetCountryName(code string) string {
	countryCodeMapOnce.Do(func() {
		countryCodeMap, countryCodeMapErr = loadCountryCodeMap()
		if countryCodeMapErr != nil {
			logging.Warn("Failed to initialize country code map", "error", countryCodeMapErr)
		}
	})

	if name, ok := countryCodeMap[strings.ToUpper(code)]; ok {
		return name
	}

	// If not found, return the original code
	logging.Debug("Country code not found", "code", code)
	return code
}
