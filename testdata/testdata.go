package testdata

import (
	"compress/gzip"
	"embed"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.gz
var data embed.FS

func newReader(t *testing.T, path string) io.Reader {
	f, err := data.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	r, err := gzip.NewReader(f)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, r.Close())
	})

	return r
}

// AirportsCSV streams a small OurAirports extract: thirteen airports with
// IATA codes, one heliport keyed only by ident, and one truncated row.
func AirportsCSV(t *testing.T) io.Reader {
	return newReader(t, "airports.csv.gz")
}

// AirportsCSVBytes returns the whole extract, for tests that need to read
// it more than once.
func AirportsCSVBytes(t *testing.T) []byte {
	b, err := io.ReadAll(AirportsCSV(t))
	require.NoError(t, err)
	return b
}
