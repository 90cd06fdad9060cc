// Package adi2edi converts a parsed ADIF log into REG1TEST (EDI) contest logs,
// one section per band.
//
// Document-level values (station callsign, own locator, header metadata) are
// taken from their first occurrence in the file. The TDate range spans every
// contact in the file and is the same in all band sections.
package adi2edi
