package airports

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rmitchellscott/reather/logging"
)

var (
	// ErrNotInitialized is returned by queries made before a successful Init.
	ErrNotInitialized = errors.New("airports: directory not initialized")
	// ErrAlreadyInitialized is returned by any Init after the first successful one.
	ErrAlreadyInitialized = errors.New("airports: directory already initialized")
	// ErrLoadFailed wraps every fetch or header failure during a load.
	ErrLoadFailed = errors.New("airports: load failed")
)

// usICAOPrefix starts every ICAO code in the contiguous United States.
const usICAOPrefix = "K"

// Directory is the process-wide airport handle. It is built once by Init and
// then shared by reference with every component that needs airport data.
type Directory struct {
	initMu sync.Mutex
	state  atomic.Pointer[loadedState]
}

// loadedState is published as a unit so readers never wait on a running Init.
type loadedState struct {
	table *Table
	stats LoadStats
}

// NewDirectory returns an empty, uninitialized directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// Init loads the table from src. Only the first successful call builds the
// table; later calls return ErrAlreadyInitialized and leave it untouched. A
// failed load leaves the directory uninitialized.
func (d *Directory) Init(ctx context.Context, src Source) (LoadStats, error) {
	d.initMu.Lock()
	defer d.initMu.Unlock()

	if s := d.state.Load(); s != nil {
		return s.stats, ErrAlreadyInitialized
	}

	t, stats, err := Fetch(ctx, src)
	if err != nil {
		return stats, err
	}

	d.state.Store(&loadedState{table: t, stats: stats})
	logging.Info("Loaded airport table", "rows", stats.Rows, "keys", stats.Keys, "skipped", stats.Skipped)
	return stats, nil
}

func (d *Directory) loaded() (*Table, error) {
	s := d.state.Load()
	if s == nil {
		return nil, ErrNotInitialized
	}
	return s.table, nil
}

// LookupIATA returns the airport stored under code, or nil, nil when there
// is none. Input is trimmed and upper-cased.
func (d *Directory) LookupIATA(code string) (*Airport, error) {
	t, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return t.Get(code), nil
}

// LookupICAO is LookupIATA for idents. Both read the same key space.
func (d *Directory) LookupICAO(ident string) (*Airport, error) {
	t, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return t.Get(ident), nil
}

// IsValidCode reports whether LookupIATA finds code.
func (d *Directory) IsValidCode(code string) (bool, error) {
	a, err := d.LookupIATA(code)
	if err != nil {
		return false, err
	}
	return a != nil, nil
}

// CodeFromStation resolves a weather station id to an airport code.
//
// A four-letter id starting with K is first tried with the K stripped, so
// "KBOS" yields "BOS" even if "KBOS" is also a key. Next the id itself is
// tried as a code. Last, if the id is an ident, that airport's IATA code is
// returned when it has one.
func (d *Directory) CodeFromStation(stationID string) (string, bool, error) {
	t, err := d.loaded()
	if err != nil {
		return "", false, err
	}

	id := normalizeCode(stationID)
	if len(id) == 4 && id[:1] == usICAOPrefix {
		if short := id[1:]; t.Has(short) {
			return short, true, nil
		}
	}
	if t.Has(id) {
		return id, true, nil
	}
	if a := t.Get(id); a != nil {
		if iata := normalizeCode(a.IATACode); iata != "" {
			return iata, true, nil
		}
	}
	return "", false, nil
}

// Search runs a wildcard search; see Table.Search.
func (d *Directory) Search(term string) ([]Airport, error) {
	t, err := d.loaded()
	if err != nil {
		return nil, err
	}
	return t.Search(term), nil
}

// Count returns the number of keys in the table, or 0 before Init.
func (d *Directory) Count() int {
	s := d.state.Load()
	if s == nil {
		return 0
	}
	return s.table.Len()
}

// Stats returns the statistics of the load that built the table, or the
// zero value before Init.
func (d *Directory) Stats() LoadStats {
	s := d.state.Load()
	if s == nil {
		return LoadStats{}
	}
	return s.stats
}
