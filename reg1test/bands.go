package reg1test

import "strings"

type band struct {
	adif  string
	label string
	// Frequency range in MHz, inclusive
	lo, hi float64
}

// VHF and up, the bands REG1TEST logs are kept for
var bandTable = []band{
	{"6m", "50 MHz", 50, 54},
	{"4m", "70 MHz", 70, 71},
	{"2m", "144 MHz", 144, 148},
	{"70cm", "432 MHz", 420, 450},
	{"23cm", "1,3 GHz", 1240, 1300},
	{"13cm", "2,3 GHz", 2300, 2450},
	{"9cm", "3,4 GHz", 3300, 3500},
	{"6cm", "5,7 GHz", 5650, 5925},
	{"3cm", "10 GHz", 10000, 10500},
	{"1.25cm", "24 GHz", 24000, 24250},
	{"6mm", "47 GHz", 47000, 47200},
	{"4mm", "76 GHz", 75500, 81000},
	{"2.5mm", "120 GHz", 119980, 123000},
	{"2mm", "144 GHz", 134000, 149000},
	{"1mm", "248 GHz", 241000, 250000},
}

var bandLabels = func() map[string]string {
	m := make(map[string]string, len(bandTable))
	for _, b := range bandTable {
		m[b.adif] = b.label
	}
	return m
}()

// BandLabel maps an ADIF BAND value such as "70cm" to its REG1TEST label
// ("432 MHz"). Matching is case-sensitive. Unknown bands map to "".
func BandLabel(adifBand string) string {
	return bandLabels[strings.TrimSpace(adifBand)]
}

// BandLabelFromFreq maps a frequency in MHz to a REG1TEST band label,
// or "" when it is outside every band.
func BandLabelFromFreq(mhz float64) string {
	for _, b := range bandTable {
		if mhz >= b.lo && mhz <= b.hi {
			return b.label
		}
	}
	return ""
}

// BandLabels lists every known label from lowest to highest band.
func BandLabels() []string {
	out := make([]string, 0, len(bandTable))
	for _, b := range bandTable {
		out = append(out, b.label)
	}
	return out
}
