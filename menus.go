package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rmitchellscott/reather/airports"
	"github.com/rmitchellscott/reather/logging"
)

// app is one interactive session.
type app struct {
	cfg    Config
	client *Client
	dir    *airports.Directory
	book   AddressBook
	con    *console
}

// run shows the main menu until the user exits, the input ends, or ctx is
// cancelled.
func (a *app) run(ctx context.Context) error {
	if err := a.seedIfEmpty(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.con.println("\nMain Menu:")
		a.con.println("1. Enter a new street address")
		a.con.println("2. Choose from stored addresses")
		a.con.println("3. Search airports")
		a.con.println("4. Look up an airport code")
		a.con.println("5. Exit")
		choice, err := a.con.prompt("Please enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.newAddress(ctx)
		case "2":
			err = a.storedAddresses(ctx)
		case "3":
			err = a.searchAirports()
		case "4":
			err = a.lookupAirport()
		case "5":
			a.con.println("Exiting Reather. Goodbye!")
			return nil
		default:
			a.con.fail("main menu", &InputError{Msg: "please enter a number from 1 to 5"})
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// seedIfEmpty offers to fill an empty address file with the seed list.
// Declining leaves an empty file behind so the question is asked only once.
func (a *app) seedIfEmpty(ctx context.Context) error {
	empty, err := a.book.IsEmpty()
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	a.con.printf("'%s' is empty or does not exist.\n", a.book.Path)
	yes, err := a.con.confirm("Would you like to populate it with seed addresses?")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if err := a.book.Reset(); err != nil {
		return err
	}
	if !yes {
		a.con.println("Skipping seed address population. You can add addresses manually.")
		return nil
	}

	a.con.println("Processing seed addresses...")
	for _, seed := range seedAddresses {
		a.con.printf("Geocoding seed address: %s\n", seed)
		geo, err := a.client.GeocodeAddress(ctx, seed)
		if err != nil {
			logging.Warn("Skipping seed address", "address", seed, "error", err)
			a.con.fail("could not geocode seed address "+seed+", skipping", err)
			continue
		}
		stored := StoredAddress{Address: geo.Matched, Latitude: geo.Latitude, Longitude: geo.Longitude}
		if err := a.book.Append(stored); err != nil {
			return err
		}
		a.con.printf("  Stored: %s\n", stored.line())
	}
	a.con.printf("Seed addresses processed and stored in '%s'.\n", a.book.Path)
	return nil
}

func (a *app) newAddress(ctx context.Context) error {
	query, err := a.con.prompt("Enter new address (e.g., 1600 Pennsylvania Ave NW, Washington, DC, 20500): ")
	if err != nil {
		return err
	}
	if query == "" {
		a.con.fail("new address", &InputError{Msg: "address cannot be empty"})
		return nil
	}

	geo, err := a.client.GeocodeAddress(ctx, query)
	if err != nil {
		a.con.fail(fmt.Sprintf("geocoding address '%s'", query), err)
		return nil
	}

	stored := StoredAddress{Address: geo.Matched, Latitude: geo.Latitude, Longitude: geo.Longitude}
	if err := a.book.Append(stored); err != nil {
		a.con.fail("saving address", err)
		a.con.printf("Address geocoded but not saved: %s (Lat: %v, Lon: %v)\n", stored.Address, stored.Latitude, stored.Longitude)
	} else {
		a.con.printf("Address geocoded and added: %s (Lat: %v, Lon: %v)\n", stored.Address, stored.Latitude, stored.Longitude)
	}
	return a.addressMenu(ctx, stored)
}

func (a *app) storedAddresses(ctx context.Context) error {
	addrs, err := a.book.Load()
	if err != nil {
		a.con.fail("loading stored addresses", err)
		return nil
	}
	if len(addrs) == 0 {
		a.con.println("No stored addresses found. Please add an address first (Option 1).")
		return nil
	}

	a.con.println("\nStored Addresses:")
	for i, addr := range addrs {
		a.con.printf("%d. %s\n", i+1, addr.Address)
	}
	a.con.printf("%d. Return to Main Menu\n", len(addrs)+1)

	n, err := a.con.choose("Select an address number or return: ", len(addrs)+1)
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		a.con.fail("stored addresses", err)
		return nil
	}
	if err != nil {
		return err
	}
	if n == len(addrs)+1 {
		return nil
	}

	selected := addrs[n-1]
	a.con.printf("\nSelected address: %s (Lat: %v, Lon: %v)\n", selected.Address, selected.Latitude, selected.Longitude)
	return a.addressMenu(ctx, selected)
}

func (a *app) searchAirports() error {
	term, err := a.con.prompt("Search airports (name, code, city or region; * as wildcard, e.g. *International*): ")
	if err != nil {
		return err
	}

	results, err := a.dir.Search(term)
	if err != nil {
		a.con.fail("airport search", err)
		return nil
	}
	if len(results) == 0 {
		a.con.printf("No airports match '%s'.\n", term)
		return nil
	}

	a.con.printf("\nFound %d airport(s):\n", len(results))
	shown := results
	if limit := a.cfg.SearchDisplayLimit; len(results) > limit {
		shown = results[:limit]
	}
	a.con.printf("%s", FormatAirports(shown))
	if len(shown) < len(results) {
		a.con.printf("Showing %d of %d matches; narrow the search to see more.\n", len(shown), len(results))
	}
	return nil
}

func (a *app) lookupAirport() error {
	code, err := a.con.prompt("Enter an IATA (e.g., BOS) or ICAO (e.g., KBOS) code: ")
	if err != nil {
		return err
	}

	valid, err := a.dir.IsValidCode(code)
	if err != nil {
		a.con.fail("airport lookup", err)
		return nil
	}
	if !valid {
		a.con.printf("'%s' is not a known airport code.\n", code)
		return nil
	}

	airport, err := a.dir.LookupIATA(code)
	if err == nil && airport == nil {
		airport, err = a.dir.LookupICAO(code)
	}
	if err != nil {
		a.con.fail("airport lookup", err)
		return nil
	}
	a.con.printf("%s", FormatAirport(*airport))
	return nil
}

// addressMenu finds the nearest station for addr and serves the per-address
// actions until the user returns.
func (a *app) addressMenu(ctx context.Context, addr StoredAddress) error {
	a.con.printf("\nOperating for address: %s (Lat: %v, Lon: %v)\n", addr.Address, addr.Latitude, addr.Longitude)

	var station *Station
	found, err := a.client.FindNearestStation(ctx, addr.Latitude, addr.Longitude)
	switch {
	case err != nil:
		a.con.fail(fmt.Sprintf("finding nearest station for Lat: %v, Lon: %v", addr.Latitude, addr.Longitude), err)
	case found.HasCoordinates():
		station = &found
		a.con.printf("Found nearest station: %s (%s) - Lat: %v, Lon: %v\n", found.Name, found.ID, *found.Latitude, *found.Longitude)
	default:
		station = &found
		a.con.printf("Found nearest station: %s (%s) (Coordinates not available from API)\n", found.Name, found.ID)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.con.printf("\n--- Submenu for %s ---\n", addr.Address)
		a.con.println("1. Get Current Conditions")
		a.con.println("2. Get Local Forecast")
		a.con.println("3. Get Tides")
		a.con.println("4. Earthquakes Nearby")
		a.con.println("5. Location Details")
		a.con.println("6. External Links (Maps, Flights, Real Estate)")
		a.con.println("7. Return to Main Menu")
		choice, err := a.con.prompt("Please enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.showConditions(ctx, station)
		case "2":
			a.showForecast(ctx, station)
		case "3":
			a.showTides(ctx, addr)
		case "4":
			a.showEarthquakes(ctx, addr)
		case "5":
			a.showPlace(ctx, addr)
		case "6":
			a.showLinks(addr, station)
		case "7":
			a.con.println("Returning to Main Menu...")
			return nil
		default:
			a.con.fail("submenu", &InputError{Msg: "please enter a number from 1 to 7"})
		}
	}
}

func (a *app) showConditions(ctx context.Context, station *Station) {
	if station == nil {
		a.con.fail("fetching weather", errors.New("station ID is unknown or no station was found"))
		return
	}
	obs, err := a.client.LatestObservation(ctx, station.ID)
	if err != nil {
		a.con.fail("fetching weather", err)
		return
	}
	a.con.printf("\n%s", FormatObservation(*station, obs))
}

func (a *app) showForecast(ctx context.Context, station *Station) {
	if station == nil {
		a.con.fail("fetching local forecast", errors.New("forecast URL not available for this location"))
		return
	}
	a.con.printf("\nFetching local forecast for area near %s...\n", station.Name)
	periods, err := a.client.Forecast(ctx, station.ForecastURL)
	if err != nil {
		a.con.fail("fetching local forecast", err)
		return
	}
	a.con.printf("\n%s", FormatForecast(*station, periods, a.cfg.ForecastPeriods))
}

func (a *app) showTides(ctx context.Context, addr StoredAddress) {
	ts, distance, err := a.client.NearestTideStation(ctx, addr.Latitude, addr.Longitude)
	if err != nil {
		a.con.fail("finding tide station", err)
		return
	}
	events, err := a.client.TidePredictions(ctx, ts.ID, now())
	if err != nil {
		a.con.fail("fetching tide predictions", err)
		return
	}
	a.con.printf("\n%s", FormatTides(ts, distance, events))
}

func (a *app) showEarthquakes(ctx context.Context, addr StoredAddress) {
	quakes, err := a.client.NearbyEarthquakes(ctx, addr.Latitude, addr.Longitude, a.cfg.EarthquakeRadiusMiles)
	if err != nil {
		a.con.fail("fetching earthquakes", err)
		return
	}
	a.con.printf("\n%s", FormatEarthquakes(quakes, a.cfg.EarthquakeRadiusMiles))
}

func (a *app) showPlace(ctx context.Context, addr StoredAddress) {
	place, err := a.client.ReverseGeocode(ctx, addr.Latitude, addr.Longitude)
	if err != nil {
		a.con.fail("fetching location details", err)
		return
	}
	a.con.printf("\n%s", FormatPlace(place))
}

func (a *app) showLinks(addr StoredAddress, station *Station) {
	var airportCode string
	if station != nil {
		code, ok, err := a.dir.CodeFromStation(station.ID)
		if err != nil {
			logging.Warn("Airport lookup for station failed", "station", station.ID, "error", err)
		} else if ok {
			airportCode = code
		}
	}
	a.con.printf("\n%s", FormatExternalLinks(addr, station, airportCode))
}
