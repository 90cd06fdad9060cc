package reg1test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandLabel(t *testing.T) {
	tests := map[string]string{
		"6m":     "50 MHz",
		"4m":     "70 MHz",
		"2m":     "144 MHz",
		"70cm":   "432 MHz",
		"23cm":   "1,3 GHz",
		"13cm":   "2,3 GHz",
		"9cm":    "3,4 GHz",
		"6cm":    "5,7 GHz",
		"3cm":    "10 GHz",
		"1.25cm": "24 GHz",
		"6mm":    "47 GHz",
		"4mm":    "76 GHz",
		"2.5mm":  "120 GHz",
		"2mm":    "144 GHz",
		"1mm":    "248 GHz",
		" 2m ":   "144 MHz",
		"xyz":    "",
		"20m":    "",
		"2M":     "",
		"":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, BandLabel(in), "BandLabel(%q)", in)
	}
}

func TestBandLabelFromFreq(t *testing.T) {
	tests := []struct {
		mhz  float64
		want string
	}{
		{50.150, "50 MHz"},
		{144.300, "144 MHz"},
		{432.200, "432 MHz"},
		{1296.2, "1,3 GHz"},
		{10368.1, "10 GHz"},
		{122250, "120 GHz"},
		{142000, "144 GHz"},
		{248000, "248 GHz"},
		{14.074, ""},
		{500, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandLabelFromFreq(tt.mhz), "BandLabelFromFreq(%v)", tt.mhz)
	}
}

func TestBandLabelsOrder(t *testing.T) {
	labels := BandLabels()
	assert.Len(t, labels, 15)
	assert.Equal(t, "50 MHz", labels[0])
	assert.Equal(t, "248 GHz", labels[14])
}
