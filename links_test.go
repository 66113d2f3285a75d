package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractZipCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		address string
		want    string
		ok      bool
	}{
		{"233 E MAIN ST, BOZEMAN, MT, 59715", "59715", true},
		{"52 WHITEHEAD AVE, PORTLAND, ME, 04109", "04109", true},
		{"1 MAIN ST, SPRINGFIELD, IL 62701", "62701", true},
		{"1 MAIN ST, SPRINGFIELD, IL, 62701-1234", "", false},
		{"1 MAIN ST, SPRINGFIELD, IL, 6270A", "", false},
		{"1 MAIN ST, SPRINGFIELD, IL, 1234", "", false},
		{"1 MAIN ST, SPRINGFIELD, IL,", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			got, ok := extractZipCode(tt.address)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkBuilders(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://www.google.com/maps?q=44.09829,-69.10433&ll=44.09829,-69.10433&z=17&t=k",
		googleMapsURL(44.09829, -69.10433))
	assert.Equal(t, "https://www.zillow.com/homes/for_sale/04841", zillowURL("04841"))
}
