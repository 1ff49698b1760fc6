package gfa

import (
	"fmt"
	"strconv"
	"strings"
)

// Header is an "H" line. Only the version (VN:Z) is lifted out of its optional fields
type Header struct {
	Version        *string
	OptionalFields []Field
}

// Segment is an "S" line, a named sequence
type Segment struct {
	Name string

	// Sequence is stored as written, "*" included
	Sequence string

	Length        *int64 // LN:i
	ReadCount     *int64 // RC:i
	FragmentCount *int64 // FC:i
	KmerCount     *int64 // KC:i
	URI           *string

	// checksum (SH:H) is nil if absent, see SetChecksum
	checksum []byte

	OptionalFields []Field
}

// Link is an "L" line, an overlap between the ends of two segments
type Link struct {
	From       string
	FromOrient Orientation
	To         string
	ToOrient   Orientation

	// Overlap is a CIGAR string or "*", not interpreted
	Overlap string

	MapQuality    *int64 // MQ:i
	Mismatches    *int64 // NM:i
	ReadCount     *int64 // RC:i
	FragmentCount *int64 // FC:i
	KmerCount     *int64 // KC:i
	EdgeID        *string

	OptionalFields []Field
}

// Containment is a "C" line, a segment contained in another starting at Pos
type Containment struct {
	Container       string
	ContainerOrient Orientation
	Contained       string
	ContainedOrient Orientation
	Pos             int
	Overlap         string

	ReadCoverage *int64 // RC:i
	Mismatches   *int64 // NM:i
	EdgeID       *string

	OptionalFields []Field
}

// NewHeader makes a header declaring version. An empty version is left absent
func NewHeader(version string) Header {
	if version == "" {
		return Header{}
	}
	return Header{Version: &version}
}

// NewSegment makes a segment with all its optional attributes absent
func NewSegment(name, sequence string) Segment {
	return Segment{Name: name, Sequence: sequence}
}

// NewLink makes a link with all its optional attributes absent
func NewLink(from string, fromOrient Orientation, to string, toOrient Orientation, overlap string) Link {
	return Link{
		From:       from,
		FromOrient: fromOrient,
		To:         to,
		ToOrient:   toOrient,
		Overlap:    overlap,
	}
}

// NewContainment makes a containment with all its optional attributes absent
func NewContainment(container string, containerOrient Orientation, contained string, containedOrient Orientation, pos int, overlap string) Containment {
	return Containment{
		Container:       container,
		ContainerOrient: containerOrient,
		Contained:       contained,
		ContainedOrient: containedOrient,
		Pos:             pos,
		Overlap:         overlap,
	}
}

// Checksum returns the nibbles of the segment's SH:H checksum
func (s Segment) Checksum() ([]byte, bool) {
	return s.checksum, s.checksum != nil
}

// SetChecksum sets the SH:H checksum. Every nibble has to be in [0, 15];
// no nibbles removes the checksum
func (s *Segment) SetChecksum(nibbles ...byte) error {
	if len(nibbles) == 0 {
		s.checksum = nil
		return nil
	}
	v, err := NewBytes(nibbles...)
	if err != nil {
		return fmt.Errorf("failed to set checksum of segment %s: %w", s.Name, err)
	}
	s.checksum, _ = v.Bytes()
	return nil
}

func (h Header) String() string {
	var sb strings.Builder
	sb.WriteString("H")
	writeString(&sb, "VN", h.Version)
	writeFields(&sb, h.OptionalFields)
	return sb.String()
}

func (s Segment) String() string {
	var sb strings.Builder
	sb.WriteString("S\t" + s.Name + "\t" + s.Sequence)
	writeInt(&sb, "LN", s.Length)
	writeInt(&sb, "RC", s.ReadCount)
	writeInt(&sb, "FC", s.FragmentCount)
	writeInt(&sb, "KC", s.KmerCount)
	if len(s.checksum) > 0 {
		sb.WriteString("\t" + NewField("SH", Value{typ: TypeBytes, bytes: s.checksum}).String())
	}
	writeString(&sb, "UR", s.URI)
	writeFields(&sb, s.OptionalFields)
	return sb.String()
}

func (l Link) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join([]string{"L", l.From, l.FromOrient.String(), l.To, l.ToOrient.String(), l.Overlap}, "\t"))
	writeInt(&sb, "MQ", l.MapQuality)
	writeInt(&sb, "NM", l.Mismatches)
	writeInt(&sb, "RC", l.ReadCount)
	writeInt(&sb, "FC", l.FragmentCount)
	writeInt(&sb, "KC", l.KmerCount)
	writeString(&sb, "ID", l.EdgeID)
	writeFields(&sb, l.OptionalFields)
	return sb.String()
}

func (c Containment) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join([]string{
		"C",
		c.Container,
		c.ContainerOrient.String(),
		c.Contained,
		c.ContainedOrient.String(),
		strconv.Itoa(c.Pos),
		c.Overlap,
	}, "\t"))
	writeInt(&sb, "RC", c.ReadCoverage)
	writeInt(&sb, "NM", c.Mismatches)
	writeString(&sb, "ID", c.EdgeID)
	writeFields(&sb, c.OptionalFields)
	return sb.String()
}

func parseHeader(fields []string) (Header, error) {
	opts, err := parseFields(fields[1:])
	if err != nil {
		return Header{}, err
	}

	h := Header{}
	for _, f := range opts {
		if f.Tag == "VN" && liftString(f, &h.Version) {
			continue
		}
		h.OptionalFields = append(h.OptionalFields, f)
	}
	return h, nil
}

func parseSegment(fields []string) (Segment, error) {
	if len(fields) < 3 {
		return Segment{}, missing("S", 3, len(fields))
	}

	opts, err := parseFields(fields[3:])
	if err != nil {
		return Segment{}, err
	}

	s := NewSegment(fields[1], fields[2])
	for _, f := range opts {
		lifted := false
		switch f.Tag {
		case "LN":
			lifted = liftInt(f, &s.Length)
		case "RC":
			lifted = liftInt(f, &s.ReadCount)
		case "FC":
			lifted = liftInt(f, &s.FragmentCount)
		case "KC":
			lifted = liftInt(f, &s.KmerCount)
		case "SH":
			if b, ok := f.Value.Bytes(); ok && s.checksum == nil && len(b) > 0 {
				s.checksum, lifted = b, true
			}
		case "UR":
			lifted = liftString(f, &s.URI)
		}
		if !lifted {
			s.OptionalFields = append(s.OptionalFields, f)
		}
	}
	return s, nil
}

func parseLink(fields []string) (Link, error) {
	if len(fields) < 6 {
		return Link{}, missing("L", 6, len(fields))
	}

	fromOrient, err := ParseOrientation(fields[2])
	if err != nil {
		return Link{}, err
	}
	toOrient, err := ParseOrientation(fields[4])
	if err != nil {
		return Link{}, err
	}
	opts, err := parseFields(fields[6:])
	if err != nil {
		return Link{}, err
	}

	l := NewLink(fields[1], fromOrient, fields[3], toOrient, fields[5])
	for _, f := range opts {
		lifted := false
		switch f.Tag {
		case "MQ":
			lifted = liftInt(f, &l.MapQuality)
		case "NM":
			lifted = liftInt(f, &l.Mismatches)
		case "RC":
			lifted = liftInt(f, &l.ReadCount)
		case "FC":
			lifted = liftInt(f, &l.FragmentCount)
		case "KC":
			lifted = liftInt(f, &l.KmerCount)
		case "ID":
			lifted = liftString(f, &l.EdgeID)
		}
		if !lifted {
			l.OptionalFields = append(l.OptionalFields, f)
		}
	}
	return l, nil
}

func parseContainment(fields []string) (Containment, error) {
	if len(fields) < 7 {
		return Containment{}, missing("C", 7, len(fields))
	}

	containerOrient, err := ParseOrientation(fields[2])
	if err != nil {
		return Containment{}, err
	}
	containedOrient, err := ParseOrientation(fields[4])
	if err != nil {
		return Containment{}, err
	}
	pos, err := strconv.Atoi(fields[5])
	if err != nil || pos < 0 || !intPattern.MatchString(fields[5]) {
		return Containment{}, fmt.Errorf("failed to parse containment position %q: %w", fields[5], ErrMalformedValue)
	}
	opts, err := parseFields(fields[7:])
	if err != nil {
		return Containment{}, err
	}

	c := NewContainment(fields[1], containerOrient, fields[3], containedOrient, pos, fields[6])
	for _, f := range opts {
		lifted := false
		switch f.Tag {
		case "RC":
			lifted = liftInt(f, &c.ReadCoverage)
		case "NM":
			lifted = liftInt(f, &c.Mismatches)
		case "ID":
			lifted = liftString(f, &c.EdgeID)
		}
		if !lifted {
			c.OptionalFields = append(c.OptionalFields, f)
		}
	}
	return c, nil
}

// parseFields decodes the trailing optional fields of a line
func parseFields(texts []string) ([]Field, error) {
	var fields []Field
	for _, t := range texts {
		f, err := ParseField(t)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// liftInt moves an "i" field into dst if dst hasn't been set yet
func liftInt(f Field, dst **int64) bool {
	i, ok := f.Value.Int()
	if !ok || *dst != nil {
		return false
	}
	*dst = &i
	return true
}

// liftString moves a "Z" field into dst if dst hasn't been set yet
func liftString(f Field, dst **string) bool {
	s, ok := f.Value.Str()
	if !ok || *dst != nil {
		return false
	}
	*dst = &s
	return true
}

func writeInt(sb *strings.Builder, tag string, i *int64) {
	if i != nil {
		sb.WriteString("\t" + NewField(tag, NewInt(*i)).String())
	}
}

func writeString(sb *strings.Builder, tag string, s *string) {
	if s != nil {
		sb.WriteString("\t" + NewField(tag, NewString(*s)).String())
	}
}

func writeFields(sb *strings.Builder, fields []Field) {
	for _, f := range fields {
		sb.WriteString("\t" + f.String())
	}
}

func missing(record string, want, got int) error {
	return fmt.Errorf("%s line has %d fields, needs at least %d: %w", record, got, want, ErrMissingField)
}
