package adi2edi

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jj1bdx/adi2edi/adif"
	"github.com/jj1bdx/adi2edi/reg1test"
)

// ADIF tags the converter reads
const (
	tagStationCallsign  = "STATION_CALLSIGN"
	tagMyGridsquare     = "MY_GRIDSQUARE"
	tagQSODate          = "QSO_DATE"
	tagTimeOn           = "TIME_ON"
	tagBand             = "BAND"
	tagFreq             = "FREQ"
	tagCall             = "CALL"
	tagMode             = "MODE"
	tagRSTSent          = "RST_SENT"
	tagSTX              = "STX"
	tagRSTRcvd          = "RST_RCVD"
	tagSRX              = "SRX"
	tagGridsquare       = "GRIDSQUARE"
	tagADIFVer          = "ADIF_VER"
	tagCreatedTimestamp = "CREATED_TIMESTAMP"
	tagProgramID        = "PROGRAMID"
	tagProgramVersion   = "PROGRAMVERSION"
)

var recordTags = []string{
	tagQSODate, tagTimeOn, tagBand, tagFreq, tagCall, tagMode,
	tagRSTSent, tagSTX, tagRSTRcvd, tagSRX, tagGridsquare,
}

// Options controls a conversion.
type Options struct {
	// SkipRemarks leaves the [Remarks] section empty.
	SkipRemarks bool
	// BandFromFreq derives the band from FREQ for records without BAND.
	BandFromFreq bool
	Logger       *zap.Logger
}

type converter struct {
	opts Options
	log  *zap.Logger

	// Document scoped captures
	station *captureSet
	meta    *captureSet
	pcall   string
	pwwlo   string

	remarks []string
	dates   dateRange
	bands   bandSet
	records int
}

// Convert walks a parsed ADIF document and builds the per-band REG1TEST logs.
// It fails on the first QSO_DATE, STX or SRX value that is not a number.
func Convert(doc *adif.Node, opts Options) (*Document, error) {
	if doc == nil || doc.Kind != adif.KindDocument {
		return nil, ErrNotDocument
	}
	c := &converter{
		opts:    opts,
		log:     opts.Logger,
		station: newCaptureSet(tagStationCallsign, tagMyGridsquare),
		meta:    newCaptureSet(tagADIFVer, tagCreatedTimestamp, tagProgramID, tagProgramVersion),
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}

	for _, n := range doc.Children {
		switch n.Kind {
		case adif.KindHeader:
			c.walkHeader(n)
		case adif.KindRecord:
			c.records++
			if err := c.walkRecord(n); err != nil {
				return nil, err
			}
		}
	}

	out := &Document{
		Bands:     c.bands.bands,
		Remarks:   c.remarks,
		DateRange: c.dates.String(),
	}
	for _, b := range out.Bands {
		b.Header.TDate = out.DateRange
	}
	if opts.SkipRemarks {
		out.Remarks = nil
	}
	c.log.Debug("converted adif document",
		zap.Int("records", c.records),
		zap.Int("bands", len(out.Bands)),
		zap.String("tdate", out.DateRange))
	return out, nil
}

// ConvertString converts and renders in one step.
func ConvertString(doc *adif.Node, opts Options) (string, error) {
	d, err := Convert(doc, opts)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func (c *converter) walkHeader(header *adif.Node) {
	for _, n := range header.Children {
		switch n.Kind {
		case adif.KindLiteralLine:
			c.remarks = append(c.remarks, strings.TrimSpace(n.Text))
		case adif.KindMultiLineBlock:
			for _, l := range n.Nodes(adif.KindLiteralLine) {
				c.remarks = append(c.remarks, strings.TrimSpace(l.Text))
			}
		case adif.KindField:
			c.walkField(n, []*captureSet{c.meta, c.station}, func(value string) error {
				for _, tag := range c.meta.take() {
					c.remarks = append(c.remarks, tag+"="+value)
				}
				c.takeStation(value)
				return nil
			})
		}
	}
}

func (c *converter) walkRecord(record *adif.Node) error {
	caps := newCaptureSet(recordTags...)
	q := reg1test.NewQSORecord()
	var band, freq string

	for _, field := range record.Nodes(adif.KindField) {
		err := c.walkField(field, []*captureSet{c.station, caps}, func(value string) error {
			c.takeStation(value)
			for _, tag := range caps.take() {
				switch tag {
				case tagQSODate:
					n, err := strconv.ParseUint(value, 10, 32)
					if err != nil {
						return c.fieldError(tag, value, err)
					}
					c.dates.observe(n, value)
					if len(value) > 2 {
						// Drop the century
						q.Date = value[2:]
					}
				case tagTimeOn:
					// Drop the seconds
					if len(value) > 4 {
						q.Time = value[:4]
					} else {
						q.Time = value
					}
				case tagBand:
					band = value
				case tagFreq:
					freq = value
				case tagCall:
					q.Call = value
				case tagMode:
					q.Mode = reg1test.ModeCode(value)
					if q.Mode == reg1test.ModeUnknown && value != "" {
						c.log.Debug("unmapped mode", zap.Int("record", c.records), zap.String("mode", value))
					}
				case tagRSTSent:
					q.SentRST = value
				case tagSTX:
					n, err := parseSerial(value)
					if err != nil {
						return c.fieldError(tag, value, err)
					}
					q.SentNumber = n
				case tagRSTRcvd:
					q.ReceivedRST = value
				case tagSRX:
					n, err := parseSerial(value)
					if err != nil {
						return c.fieldError(tag, value, err)
					}
					q.ReceivedNumber = n
				case tagGridsquare:
					q.ReceivedWWL = value
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	label := c.bandLabel(band, freq)
	if c.bands.add(label, q, c.pcall, c.pwwlo) {
		c.log.Debug("new band", zap.String("band", label), zap.Int("record", c.records))
	}
	return nil
}

// walkField feeds one field node through the capture sets: the name marks
// a tag seen, the length is broadcast, and the trimmed data is handed to
// apply for whatever tags are ready.
func (c *converter) walkField(field *adif.Node, sets []*captureSet, apply func(value string) error) error {
	for _, part := range field.Children {
		switch part.Kind {
		case adif.KindFieldName:
			name := strings.ToUpper(part.Text)
			for _, s := range sets {
				s.markSeen(name)
			}
		case adif.KindDataLength:
			n, err := strconv.Atoi(part.Text)
			if err != nil {
				continue
			}
			for _, s := range sets {
				s.declareLength(n)
			}
		case adif.KindData:
			if err := apply(strings.TrimSpace(part.Text)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *converter) takeStation(value string) {
	for _, tag := range c.station.take() {
		switch tag {
		case tagStationCallsign:
			c.pcall = value
		case tagMyGridsquare:
			c.pwwlo = value
		}
	}
}

func (c *converter) bandLabel(band, freq string) string {
	if band != "" {
		label := reg1test.BandLabel(band)
		if label == "" {
			c.log.Debug("unmapped band", zap.Int("record", c.records), zap.String("band", band))
		}
		return label
	}
	if !c.opts.BandFromFreq || freq == "" {
		return ""
	}
	mhz, err := strconv.ParseFloat(freq, 64)
	if err != nil {
		c.log.Debug("ignoring unparsable frequency", zap.Int("record", c.records), zap.String("freq", freq))
		return ""
	}
	return reg1test.BandLabelFromFreq(mhz)
}

func (c *converter) fieldError(tag, value string, err error) error {
	return &FieldError{Record: c.records, Tag: tag, Value: value, Err: err}
}

// maxSerial is the largest serial number a QSO record column can hold.
const maxSerial = 9999

// parseSerial parses a contact serial number, ignoring leading zeros.
// An empty or all-zero value is 0.
func parseSerial(s string) (uint16, error) {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	if n > maxSerial {
		return 0, fmt.Errorf("serial number %d exceeds %d", n, maxSerial)
	}
	return uint16(n), nil
}
