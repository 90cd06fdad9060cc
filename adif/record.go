package adif

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
)

// Errors
var ErrNoSuchField = errors.New("no such field")

// Field is a single name/value pair of a record or header.
type Field struct {
	Name  string
	Value string
	// ADIF data type indicator, empty if not given
	TypeCode string
}

// String serializes the field as an ADIF data specifier.
func (f Field) String() string {
	if f.TypeCode != "" {
		return fmt.Sprintf("<%s:%d:%s>%s", f.Name, len(f.Value), f.TypeCode, f.Value)
	}
	return fmt.Sprintf("<%s:%d>%s", f.Name, len(f.Value), f.Value)
}

// Record is the flat field list of one record node, in file order.
type Record []Field

// Fields collects the fields of a record or header node.
func Fields(n *Node) Record {
	var r Record
	for _, field := range n.Nodes(KindField) {
		var f Field
		for _, part := range field.Children {
			switch part.Kind {
			case KindFieldName:
				f.Name = part.Text
			case KindDataType:
				f.TypeCode = part.Text
			case KindData:
				f.Value = part.Text
			}
		}
		r = append(r, f)
	}
	return r
}

// Records returns the field lists of every record in a document.
func Records(doc *Node) []Record {
	nodes := doc.Nodes(KindRecord)
	out := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Fields(n))
	}
	return out
}

// Value returns the first value of the named field (case-insensitive).
func (r Record) Value(name string) (string, error) {
	for _, f := range r {
		if strings.EqualFold(f.Name, name) {
			return f.Value, nil
		}
	}
	return "", ErrNoSuchField
}

// ToString prints the record as a single ADIF line terminated by <EOR>.
func (r Record) ToString() string {
	var record bytes.Buffer
	for _, f := range r {
		record.WriteString(f.String())
	}
	record.WriteString("<EOR>")
	return record.String()
}

// Fingerprint for duplication detection
func (r Record) Fingerprint() uint64 {
	fpfields := []string{
		"call", "station_callsign", "band",
		"freq", "mode", "qso_date", "time_on",
		"time_off"}
	fpvals := make([]string, 0, len(fpfields))
	for _, f := range fpfields {
		if v, err := r.Value(f); err == nil {
			fpvals = append(fpvals, strings.TrimSpace(v))
		}
	}
	return xxh3.HashString(strings.Join(fpvals, "|"))
}

// Time returns the QSO start time from QSO_DATE and TIME_ON, in UTC.
// TIME_ON may be HHMM or HHMMSS.
func (r Record) Time() (time.Time, error) {
	date, err := r.Value("qso_date")
	if err != nil {
		return time.Time{}, fmt.Errorf("qso_date: %w", err)
	}
	clock, err := r.Value("time_on")
	if err != nil {
		return time.Time{}, fmt.Errorf("time_on: %w", err)
	}
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	layout := "20060102150405"
	if len(clock) == 4 {
		layout = "200601021504"
	}
	t, err := time.ParseInLocation(layout, date+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("qso time %s %s: %w", date, clock, err)
	}
	return t, nil
}
