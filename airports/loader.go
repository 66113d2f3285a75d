package airports

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/jszwec/csvutil"
	"github.com/rmitchellscott/reather/logging"
)

// DefaultCSVURL is the OurAirports airports.csv export.
const DefaultCSVURL = "https://raw.githubusercontent.com/davidmegginson/ourairports-data/main/airports.csv"

// requiredColumns must appear in the header; without them no key can be built.
var requiredColumns = []string{"ident", "name", "iata_code"}

// LoadStats describes one completed load.
type LoadStats struct {
	Rows    int // data rows read, including skipped ones
	Skipped int // rows dropped because they could not be decoded
	Keys    int // keys in the finished table
}

// Source yields the raw airports CSV.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// HTTPSource downloads the CSV with a single GET.
type HTTPSource struct {
	URL       string
	Client    *http.Client
	UserAgent string
}

// Open issues the request and returns the response body.
func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	url := s.URL
	if url == "" {
		url = DefaultCSVURL
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status code: %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

// ReaderSource wraps an already open CSV stream.
func ReaderSource(r io.Reader) Source {
	return readerSource{r: r}
}

// Fetch opens src and loads its contents. Every failure wraps ErrLoadFailed.
func Fetch(ctx context.Context, src Source) (*Table, LoadStats, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer rc.Close()
	return Load(rc)
}

// Load builds a Table from a CSV stream whose header names the Airport
// fields in any order.
//
// Bare quotes inside unquoted fields are kept as literal text. Rows that
// cannot be decoded (wrong field count, unterminated quotes) are skipped
// and counted in LoadStats.Skipped; they never fail the load. A missing or
// unreadable header, a header without the required columns, or a read error
// from the underlying stream fails the whole load with ErrLoadFailed.
func Load(r io.Reader) (*Table, LoadStats, error) {
	var stats LoadStats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: reading header: %w", ErrLoadFailed, err)
	}

	header := dec.Header()
	for _, col := range requiredColumns {
		if !slices.Contains(header, col) {
			return nil, stats, fmt.Errorf("%w: header is missing column %q", ErrLoadFailed, col)
		}
	}

	t := newTable()
	for {
		var a Airport
		err := dec.Decode(&a)
		if errors.Is(err, io.EOF) {
			break
		}
		stats.Rows++
		if err != nil {
			if !isRowError(err) {
				return nil, stats, fmt.Errorf("%w: row %d: %w", ErrLoadFailed, stats.Rows, err)
			}
			stats.Skipped++
			logging.Debug("Skipping airport record", "row", stats.Rows, "error", err)
			continue
		}
		t.insert(&a)
	}

	stats.Keys = t.Len()
	return t, stats, nil
}

// isRowError reports whether err is confined to the current record, so
// decoding can continue with the next one.
func isRowError(err error) bool {
	var parseErr *csv.ParseError
	var typeErr *csvutil.UnmarshalTypeError
	return errors.As(err, &parseErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, csvutil.ErrFieldCount)
}
