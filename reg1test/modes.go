package reg1test

import "strings"

// ModeUnknown is the code for any mode not in the table.
const ModeUnknown byte = '0'

var modeCodes = map[string]byte{
	"SSB":  '1',
	"CW":   '2',
	"AM":   '5',
	"FM":   '6',
	"RTTY": '7',
	"SSTV": '8',
	"ATV":  '9',
}

// ModeCode maps an ADIF MODE value to its REG1TEST mode code.
// Matching is case-sensitive; ADIF mode names are upper case.
func ModeCode(mode string) byte {
	if c, ok := modeCodes[strings.TrimSpace(mode)]; ok {
		return c
	}
	return ModeUnknown
}
