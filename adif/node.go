package adif

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind identifies a parse tree node.
type Kind int

const (
	KindDocument Kind = iota
	KindHeader
	KindRecord
	KindField
	KindFieldName
	KindDataLength
	// KindDataType is the optional one-letter type indicator of <NAME:len:T>.
	KindDataType
	KindData
	KindLiteralLine
	KindMultiLineBlock
	// KindEnd marks <EOH> or <EOR>.
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindHeader:
		return "header"
	case KindRecord:
		return "record"
	case KindField:
		return "field"
	case KindFieldName:
		return "field_name"
	case KindDataLength:
		return "data_length"
	case KindDataType:
		return "data_type"
	case KindData:
		return "data"
	case KindLiteralLine:
		return "literal_line"
	case KindMultiLineBlock:
		return "multi_line_block"
	case KindEnd:
		return "end"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is one element of a parsed ADIF document.
//
// A document holds at most one header followed by records in file order.
// A field holds field_name, data_length, an optional data_type, and data,
// always in that order.
type Node struct {
	Kind     Kind
	Text     string
	Offset   int
	Children []*Node
}

// Child returns the first child of the given kind, or nil.
func (n *Node) Child(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// Nodes returns all children of the given kind.
func (n *Node) Nodes(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Dump writes an indented listing of the tree rooted at n.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) error {
	line := strings.Repeat("  ", depth) + n.Kind.String()
	switch n.Kind {
	case KindFieldName, KindDataLength, KindDataType, KindData, KindLiteralLine, KindEnd:
		line += " " + strconv.Quote(n.Text)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
