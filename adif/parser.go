package adif

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Errors
var (
	ErrInvalidFieldLength     = errors.New("invalid field length")
	ErrTypeCodeExceedsOneByte = errors.New("type code exceeds one byte")
	ErrUnknownColons          = errors.New("unknown colons in the tag")
	ErrUnterminatedTag        = errors.New("unterminated tag")
	ErrTruncatedValue         = errors.New("value shorter than declared length")
	ErrMissingEOH             = errors.New("header is not terminated by <EOH>")
)

// SyntaxError reports malformed input and the byte offset where it was found.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("adif: offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Option configures Parse.
type Option func(*parser)

// WithLogger sets the logger used for skipped or repaired input.
func WithLogger(l *zap.Logger) Option {
	return func(p *parser) {
		if l != nil {
			p.log = l
		}
	}
}

type parser struct {
	// Underlying bufio Reader
	rdr *bufio.Reader
	// Bytes consumed so far
	pos int
	log *zap.Logger
}

// A tag as read from between '<' and '>', plus its value
type tag struct {
	name []byte
	// Digits of the declared length
	length []byte
	// ADIF data type indicator (optional)
	typecode byte
	// If hasValue is false, the tag carries no value (e.g. <EOR>)
	hasValue bool
	value    []byte
	offset   int
}

// Parse reads a complete ADIF document and returns its parse tree.
// A leading byte-order mark is removed; UTF-16 input is transcoded to UTF-8.
func Parse(r io.Reader, opts ...Option) (*Node, error) {
	p := &parser{
		rdr: bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop))),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p.parse()
}

func (p *parser) parse() (*Node, error) {
	doc := &Node{Kind: KindDocument}
	start, err := p.rdr.Peek(1)
	if err == io.EOF {
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	// A file starting with '<' has no header
	if start[0] != '<' {
		header, err := p.readHeader()
		if err != nil {
			return nil, err
		}
		doc.Children = append(doc.Children, header)
	}
	if err := p.readRecords(doc); err != nil {
		return nil, err
	}
	p.log.Debug("parsed adif document",
		zap.Int("bytes", p.pos),
		zap.Int("records", len(doc.Nodes(KindRecord))))
	return doc, nil
}

func (p *parser) readHeader() (*Node, error) {
	header := &Node{Kind: KindHeader}
	for {
		offset := p.pos
		text, found, err := p.readText()
		if err != nil {
			return nil, err
		}
		if n := textNode(text, offset); n != nil {
			header.Children = append(header.Children, n)
		}
		if !found {
			return nil, &SyntaxError{Offset: p.pos, Err: ErrMissingEOH}
		}
		t, err := p.readTag()
		if err != nil {
			return nil, err
		}
		if t.is("EOH") {
			header.Children = append(header.Children, t.endNode())
			return header, nil
		}
		if !t.hasValue {
			p.log.Debug("skipping valueless header tag",
				zap.ByteString("tag", t.name), zap.Int("offset", t.offset))
			continue
		}
		header.Children = append(header.Children, t.fieldNode())
	}
}

func (p *parser) readRecords(doc *Node) error {
	var rec *Node
loop:
	for {
		// Text between fields carries no meaning
		_, found, err := p.readText()
		if err != nil {
			return err
		}
		if !found {
			break
		}
		t, err := p.readTag()
		if err != nil {
			return err
		}
		switch {
		case t.is("EOR"):
			if rec == nil {
				p.log.Debug("skipping empty record", zap.Int("offset", t.offset))
				continue
			}
			rec.Children = append(rec.Children, t.endNode())
			doc.Children = append(doc.Children, rec)
			rec = nil
		case t.is("EOH"):
			// Some loggers omit the free-text preamble, so the header starts with a tag.
			if len(doc.Children) == 0 {
				header := &Node{Kind: KindHeader}
				if rec != nil {
					header.Children = rec.Children
				}
				header.Children = append(header.Children, t.endNode())
				doc.Children = append(doc.Children, header)
				rec = nil
				continue
			}
			p.log.Debug("skipping stray <EOH>", zap.Int("offset", t.offset))
		case t.is("APP_LOTW_EOF"):
			// LotW ends their files with a non-standard EOF tag.
			break loop
		case !t.hasValue:
			p.log.Debug("skipping valueless tag",
				zap.ByteString("tag", t.name), zap.Int("offset", t.offset))
		default:
			if rec == nil {
				rec = &Node{Kind: KindRecord, Offset: t.offset}
			}
			rec.Children = append(rec.Children, t.fieldNode())
		}
	}
	if rec != nil {
		p.log.Debug("record not terminated by <EOR>", zap.Int("offset", rec.Offset))
		doc.Children = append(doc.Children, rec)
	}
	return nil
}

// readText consumes input up to and including the next '<'.
// found is false when the input ended first.
func (p *parser) readText() (text []byte, found bool, err error) {
	buf, err := p.rdr.ReadBytes('<')
	p.pos += len(buf)
	if err == io.EOF {
		return buf, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return buf[:len(buf)-1], true, nil
}

// readTag reads the rest of a tag after its '<', and the value that follows.
func (p *parser) readTag() (*tag, error) {
	t := &tag{offset: p.pos - 1}
	colons := 0
	for {
		c, err := p.rdr.ReadByte()
		if err == io.EOF {
			return nil, &SyntaxError{Offset: t.offset, Err: ErrUnterminatedTag}
		}
		if err != nil {
			return nil, err
		}
		p.pos++
		if c == '>' {
			break
		}
		switch colons {
		case 0:
			if c == ':' {
				colons++
				t.hasValue = true
			} else {
				t.name = append(t.name, c)
			}
		case 1:
			switch {
			case c == ':':
				colons++
			case c >= '0' && c <= '9':
				t.length = append(t.length, c)
			default:
				return nil, &SyntaxError{Offset: t.offset, Err: ErrInvalidFieldLength}
			}
		default:
			if c == ':' {
				return nil, &SyntaxError{Offset: t.offset, Err: ErrUnknownColons}
			}
			if t.typecode != 0 {
				return nil, &SyntaxError{Offset: t.offset, Err: ErrTypeCodeExceedsOneByte}
			}
			t.typecode = c
		}
	}
	if !t.hasValue {
		return t, nil
	}

	n, err := strconv.Atoi(string(t.length))
	if err != nil {
		return nil, &SyntaxError{Offset: t.offset, Err: fmt.Errorf("%w: %q", ErrInvalidFieldLength, t.length)}
	}
	// Get field value with the byte length specified by the field length.
	// The buffer grows with the input, so a bogus length fails at EOF.
	var value bytes.Buffer
	read, err := io.CopyN(&value, p.rdr, int64(n))
	p.pos += int(read)
	if err == io.EOF {
		return nil, &SyntaxError{Offset: t.offset, Err: ErrTruncatedValue}
	}
	if err != nil {
		return nil, err
	}
	t.value = value.Bytes()
	return t, nil
}

func (t *tag) is(name string) bool {
	return bEqualCI(t.name, name)
}

func (t *tag) endNode() *Node {
	return &Node{Kind: KindEnd, Text: string(t.name), Offset: t.offset}
}

func (t *tag) fieldNode() *Node {
	field := &Node{Kind: KindField, Offset: t.offset}
	field.Children = append(field.Children,
		&Node{Kind: KindFieldName, Text: string(t.name), Offset: t.offset},
		&Node{Kind: KindDataLength, Text: string(t.length), Offset: t.offset})
	if t.typecode != 0 {
		field.Children = append(field.Children,
			&Node{Kind: KindDataType, Text: string(t.typecode), Offset: t.offset})
	}
	field.Children = append(field.Children,
		&Node{Kind: KindData, Text: string(t.value), Offset: t.offset})
	return field
}

// textNode turns header free text into a literal_line, or a multi_line_block
// when it spans several non-blank lines.
func textNode(text []byte, offset int) *Node {
	lines := nonBlankLines(text)
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return &Node{Kind: KindLiteralLine, Text: lines[0], Offset: offset}
	}
	block := &Node{Kind: KindMultiLineBlock, Offset: offset}
	for _, l := range lines {
		block.Children = append(block.Children, &Node{Kind: KindLiteralLine, Text: l, Offset: offset})
	}
	return block
}
