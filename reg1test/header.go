package reg1test

import (
	"fmt"
	"strings"
)

// Section names
const (
	HeaderName     = "REG1TEST;1"
	RemarksName    = "Remarks"
	QSORecordsName = "QSORecords"
)

// Header is the [REG1TEST;1] section of one band.
type Header struct {
	Name  string
	TDate string
	PCall string
	PWWLo string
	PBand string
	PSect string
	PClub string
}

func NewHeader() Header {
	return Header{Name: HeaderName}
}

// String renders the header without a trailing newline.
// PSect and PClub are omitted when empty.
func (h Header) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", h.Name)
	fmt.Fprintf(&b, "TDate=%s\n", h.TDate)
	fmt.Fprintf(&b, "PCall=%s\n", h.PCall)
	fmt.Fprintf(&b, "PWWLo=%s\n", h.PWWLo)
	fmt.Fprintf(&b, "PBand=%s", h.PBand)
	if h.PSect != "" {
		fmt.Fprintf(&b, "\nPSect=%s", h.PSect)
	}
	if h.PClub != "" {
		fmt.Fprintf(&b, "\nPClub=%s", h.PClub)
	}
	return b.String()
}

// Remarks is the free text section.
type Remarks struct {
	Lines []string
}

// String renders the section without a trailing newline.
func (r Remarks) String() string {
	var b strings.Builder
	b.WriteString("[" + RemarksName + "]")
	for _, l := range r.Lines {
		b.WriteString("\n" + l)
	}
	return b.String()
}

// QSORecords is the contact list section. Every record line ends with a newline.
type QSORecords struct {
	Records []QSORecord
}

func (q *QSORecords) Add(r QSORecord) {
	q.Records = append(q.Records, r)
}

func (q QSORecords) Count() int {
	return len(q.Records)
}

func (q QSORecords) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s;%d]\n", QSORecordsName, q.Count())
	for _, r := range q.Records {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Section is one complete band log: header, remarks and records.
type Section struct {
	Header  Header
	Remarks Remarks
	QSOs    QSORecords
}

func (s Section) String() string {
	return s.Header.String() + "\n" + s.Remarks.String() + "\n" + s.QSOs.String()
}
