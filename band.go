package adi2edi

import "github.com/jj1bdx/adi2edi/reg1test"

// Band is the bucket of contacts sharing one REG1TEST band label.
type Band struct {
	Header reg1test.Header
	QSOs   reg1test.QSORecords
}

func (b *Band) Label() string {
	return b.Header.PBand
}

// Count is the number of contacts in the band.
func (b *Band) Count() int {
	return b.QSOs.Count()
}

// bandSet keeps buckets in first-seen order.
type bandSet struct {
	bands []*Band
}

// add appends rec to the bucket for label, creating the bucket with the
// given callsign and locator if the label is new. It reports whether a
// bucket was created.
func (s *bandSet) add(label string, rec reg1test.QSORecord, pcall, pwwlo string) bool {
	for _, b := range s.bands {
		if b.Header.PBand == label {
			b.QSOs.Add(rec)
			return false
		}
	}
	h := reg1test.NewHeader()
	h.PBand = label
	h.PCall = pcall
	h.PWWLo = pwwlo
	b := &Band{Header: h}
	b.QSOs.Add(rec)
	s.bands = append(s.bands, b)
	return true
}
