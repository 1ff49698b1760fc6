package gfa

import (
	"fmt"
	"strings"
)

// Kind is the record type of a line
type Kind uint8

// Kinds of line, one per record type letter: H, S, L, C, P and #
const (
	KindHeader Kind = iota
	KindSegment
	KindLink
	KindContainment
	KindPath
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSegment:
		return "segment"
	case KindLink:
		return "link"
	case KindContainment:
		return "containment"
	case KindPath:
		return "path"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Line is one parsed line of a GFA file: a Header, Segment, Link,
// Containment, Path or Comment
type Line interface {
	Kind() Kind
	String() string

	isLine()
}

// Comment is a "#" line. Its text is dropped
type Comment struct{}

func (Comment) String() string { return "#" }

func (Header) Kind() Kind      { return KindHeader }
func (Segment) Kind() Kind     { return KindSegment }
func (Link) Kind() Kind        { return KindLink }
func (Containment) Kind() Kind { return KindContainment }
func (Path) Kind() Kind        { return KindPath }
func (Comment) Kind() Kind     { return KindComment }

func (Header) isLine()      {}
func (Segment) isLine()     {}
func (Link) isLine()        {}
func (Containment) isLine() {}
func (Path) isLine()        {}
func (Comment) isLine()     {}

// ParseLine builds a record from the tab separated fields of a single line
func ParseLine(fields []string) (Line, error) {
	if len(fields) == 0 || fields[0] == "" {
		return nil, fmt.Errorf("no record type: %w", ErrMissingField)
	}

	if strings.HasPrefix(fields[0], "#") {
		return Comment{}, nil
	}

	var (
		l   Line
		err error
	)
	switch fields[0] {
	case "H":
		l, err = parseHeader(fields)
	case "S":
		l, err = parseSegment(fields)
	case "L":
		l, err = parseLink(fields)
	case "C":
		l, err = parseContainment(fields)
	case "P":
		l, err = parsePath(fields)
	default:
		return nil, fmt.Errorf("failed to parse record %q: %w", fields[0], ErrUnknownRecord)
	}

	if err != nil {
		return nil, err
	}
	return l, nil
}
