package reg1test

import (
	"fmt"
	"strings"
)

// QSORecord is one line of the [QSORecords] section.
// Field widths follow the REG1TEST definition.
type QSORecord struct {
	Date             string // YYMMDD
	Time             string // HHMM UTC
	Call             string
	Mode             byte // see ModeCode
	SentRST          string
	SentNumber       uint16
	ReceivedRST      string
	ReceivedNumber   uint16
	ReceivedExchange string
	ReceivedWWL      string
	Points           string
	NewExchange      string // "N" if new exchange
	NewWWL           string // "N" if new locator
	NewDXCC          string // "N" if new DXCC
	Duplicate        string // "D" if duplicate
}

// NewQSORecord returns a record with the default mode code.
func NewQSORecord() QSORecord {
	return QSORecord{Mode: ModeUnknown}
}

// FormatNumber renders a contact serial number: empty for zero,
// three digits up to 999, four digits up to 9999.
func FormatNumber(n uint16) string {
	switch {
	case n == 0:
		return ""
	case n > 999:
		return fmt.Sprintf("%04d", n)
	}
	return fmt.Sprintf("%03d", n)
}

// String renders the 15 semicolon-separated fields, without a newline.
func (q QSORecord) String() string {
	mode := ""
	if q.Mode != 0 {
		mode = string(q.Mode)
	}
	return strings.Join([]string{
		q.Date,
		q.Time,
		q.Call,
		mode,
		q.SentRST,
		FormatNumber(q.SentNumber),
		q.ReceivedRST,
		FormatNumber(q.ReceivedNumber),
		q.ReceivedExchange,
		q.ReceivedWWL,
		q.Points,
		q.NewExchange,
		q.NewWWL,
		q.NewDXCC,
		q.Duplicate,
	}, ";")
}
