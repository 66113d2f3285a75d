package airports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iataCodes(results []Airport) []string {
	codes := make([]string, 0, len(results))
	for _, a := range results {
		codes = append(codes, a.IATACode)
	}
	return codes
}

func TestParsePattern(t *testing.T) {
	t.Parallel()
	tests := []struct {
		term string
		mode matchMode
		text string
	}{
		{"Logan", matchExact, "LOGAN"},
		{"Lo*", matchPrefix, "LO"},
		{"*port", matchSuffix, "PORT"},
		{"*nation*", matchContains, "NATION"},
		{"  *x*  ", matchContains, "X"},
		{"*", matchContains, ""},
		{"**", matchContains, ""},
		{"a*b", matchExact, "A*B"},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			p, ok := parsePattern(tt.term)
			require.True(t, ok)
			assert.Equal(t, tt.mode, p.mode)
			assert.Equal(t, tt.text, p.text)
		})
	}

	_, ok := parsePattern("   ")
	assert.False(t, ok)
}

func TestSearch_identExactMatch(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)

	results := table.Search("KJFK")
	require.Len(t, results, 1, "JFK is stored under two keys but must be listed once")
	assert.Equal(t, "John F Kennedy International Airport", results[0].Name)

	assert.Len(t, table.Search("kjfk"), 1)
}

func TestSearch_contains(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)

	results := table.Search("*International*")
	require.NotEmpty(t, results)
	for _, a := range results {
		assert.Contains(t, strings.ToUpper(a.Name), "INTERNATIONAL")
	}
	assert.ElementsMatch(t,
		[]string{"JFK", "BOS", "LAX", "SFO", "ORD", "BZN", "PWM"},
		iataCodes(results))
}

func TestSearch_prefix(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)
	assert.ElementsMatch(t, []string{"BOS", "LAX", "LHR"}, iataCodes(table.Search("lo*")))
}

func TestSearch_suffix(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)

	results := table.Search("*Heliport")
	require.Len(t, results, 1)
	assert.Equal(t, "00A", results[0].Ident)
}

func TestSearch_exactName(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)

	assert.Equal(t, []string{"ACK"}, iataCodes(table.Search("nantucket memorial airport")))
	assert.Empty(t, table.Search("Nantucket Memorial"), "no wildcard means the whole name must match")
}

func TestSearch_otherFields(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)

	tests := map[string][]string{
		"lhr":      {"LHR"},
		"Rockland": {"RKD"},
		"us-ma":    {"BOS", "ACK", "BED"},
		"US-M*":    {"BOS", "BZN", "PWM", "RKD", "ACK", "BED"},
		"*-ENG":    {"LHR"},
	}
	for term, want := range tests {
		t.Run(term, func(t *testing.T) {
			assert.ElementsMatch(t, want, iataCodes(table.Search(term)))
		})
	}
}

func TestSearch_noMatch(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)
	assert.Empty(t, table.Search("Atlantis*"))
	assert.Empty(t, table.Search(""))
}

func TestSearch_everything(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)
	assert.Len(t, table.Search("*"), 14, "thirteen airports plus the heliport")
}

func TestSearch_stableOrder(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)

	first := table.Search("*a*")
	for range 5 {
		assert.Equal(t, first, table.Search("*a*"))
	}
}

func TestSearch_returnsCopies(t *testing.T) {
	t.Parallel()
	table := loadFixture(t)

	results := table.Search("BOS")
	require.Len(t, results, 1)
	results[0].Name = "changed"
	assert.Equal(t, "Logan International Airport", table.Get("BOS").Name)
}
