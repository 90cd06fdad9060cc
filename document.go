package adi2edi

import (
	"strings"

	"github.com/jj1bdx/adi2edi/reg1test"
)

// Document is the result of a conversion.
type Document struct {
	// Bands in the order their first contact appears in the file
	Bands []*Band
	// Remark lines shared by every band section
	Remarks []string
	// "first;last" QSO date over all bands
	DateRange string
}

// Sections renders one REG1TEST section per band.
func (d *Document) Sections() []string {
	out := make([]string, 0, len(d.Bands))
	for _, b := range d.Bands {
		out = append(out, reg1test.Section{
			Header:  b.Header,
			Remarks: reg1test.Remarks{Lines: d.Remarks},
			QSOs:    b.QSOs,
		}.String())
	}
	return out
}

// String renders all band sections separated by a blank line.
func (d *Document) String() string {
	return strings.Join(d.Sections(), "\n")
}

// QSOCount is the number of contacts over all bands.
func (d *Document) QSOCount() int {
	n := 0
	for _, b := range d.Bands {
		n += b.Count()
	}
	return n
}

// dateRange tracks the earliest and latest QSO_DATE, keeping the literal
// text of each.
type dateRange struct {
	ok       bool
	min, max uint64
	minText  string
	maxText  string
}

func (r *dateRange) observe(n uint64, text string) {
	if !r.ok || n < r.min {
		r.min, r.minText = n, text
	}
	if !r.ok || n > r.max {
		r.max, r.maxText = n, text
	}
	r.ok = true
}

func (r *dateRange) String() string {
	return r.minText + ";" + r.maxText
}
