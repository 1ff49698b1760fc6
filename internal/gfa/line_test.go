package gfa

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func int64p(i int64) *int64 { return &i }

func stringp(s string) *string { return &s }

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Line
	}{
		{
			"header",
			"H\tVN:Z:1.0",
			Header{Version: stringp("1.0")},
		},
		{
			"segment with reserved and custom tags",
			"S\t11\tACCTT\tLN:i:5\tSH:H:0a\tUR:Z:file.fa\txx:Z:custom",
			Segment{
				Name:           "11",
				Sequence:       "ACCTT",
				Length:         int64p(5),
				checksum:       []byte{0, 10},
				URI:            stringp("file.fa"),
				OptionalFields: []Field{NewField("xx", NewString("custom"))},
			},
		},
		{
			"segment without sequence",
			"S\t12\t*",
			Segment{Name: "12", Sequence: "*"},
		},
		{
			"link",
			"L\t11\t+\t12\t-\t4M\tMQ:i:60\tID:Z:e1",
			Link{
				From:       "11",
				FromOrient: Forward,
				To:         "12",
				ToOrient:   Backward,
				Overlap:    "4M",
				MapQuality: int64p(60),
				EdgeID:     stringp("e1"),
			},
		},
		{
			"containment",
			"C\t1\t-\t2\t+\t110\t100M\tNM:i:0",
			Containment{
				Container:       "1",
				ContainerOrient: Backward,
				Contained:       "2",
				ContainedOrient: Forward,
				Pos:             110,
				Overlap:         "100M",
				Mismatches:      int64p(0),
			},
		},
		{
			"path",
			"P\tp1\t11+,12-\t4M\tcv:f:0.5",
			Path{
				Name:           "p1",
				Segments:       []Step{{"11", Forward}, {"12", Backward}},
				Overlaps:       []string{"4M"},
				OptionalFields: []Field{NewField("cv", must(NewFloat(0.5)))},
			},
		},
		{
			"path without overlaps",
			"P\tp2\t11+\t*",
			Path{Name: "p2", Segments: []Step{{"11", Forward}}},
		},
		{
			"comment",
			"# a comment",
			Comment{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(strings.Split(tt.line, "\t"))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine() = %#v, want %#v", got, tt.want)
			}
			if got.Kind() != tt.want.Kind() {
				t.Errorf("Kind() = %v, want %v", got.Kind(), tt.want.Kind())
			}
		})
	}
}

// canonical lines should be written back byte for byte
func TestParseLine_roundTrip(t *testing.T) {
	lines := []string{
		"H\tVN:Z:1.0\tTS:i:100",
		"H",
		"S\t1\tCGATGCAA\tLN:i:8\tRC:i:12\tFC:i:3\tKC:i:40\tSH:H:0f3a\tUR:Z:http://x.org/1.fa\tzz:B:I1,-2,3",
		"S\t2\t",
		"L\t1\t+\t2\t-\t5M\tMQ:i:0\tNM:i:1\tRC:i:2\tFC:i:3\tKC:i:4\tID:Z:edge\tff:B:f1.5,2",
		"C\t1\t+\t2\t+\t12\t*\tRC:i:5\tNM:i:0\tID:Z:c1\tjs:J:{\"a\":[1,2]}",
		"P\t14\t11+,12-,13+\t4M,5M\tch:A:q",
		"P\tsolo\t1-\t*",
	}

	for _, line := range lines {
		l, err := ParseLine(strings.Split(line, "\t"))
		if err != nil {
			t.Errorf("ParseLine(%q) error = %v", line, err)
			continue
		}
		if got := l.String(); got != line {
			t.Errorf("round trip of\n\t%q\nwrote\n\t%q", line, got)
		}
	}
}

func TestParseLine_errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"empty", "", ErrMissingField},
		{"unknown record", "X\t1", ErrUnknownRecord},
		{"walk is not GFA 1", "W\tsample\t1", ErrUnknownRecord},
		{"segment without sequence", "S\t1", ErrMissingField},
		{"link without overlap", "L\t1\t+\t2\t+", ErrMissingField},
		{"link bad orientation", "L\t1\t*\t2\t+\t0M", ErrInvalidOrientation},
		{"containment negative pos", "C\t1\t+\t2\t+\t-1\t0M", ErrMalformedValue},
		{"containment pos with sign", "C\t1\t+\t2\t+\t+1\t0M", ErrMalformedValue},
		{"path bad token", "P\tp\t1+,2\t*", ErrMalformedPathToken},
		{"path missing overlaps", "P\tp\t1+", ErrMissingField},
		{"bad optional field", "S\t1\tA\tLN:i:x", ErrMalformedValue},
		{"unknown type code", "S\t1\tA\tLN:x:1", ErrUnknownTypeCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(strings.Split(tt.line, "\t"))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseLine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// a reserved tag with the wrong type, or a repeat, stays in the optional fields
func TestParseLine_reservedTags(t *testing.T) {
	l, err := ParseLine([]string{"S", "1", "A", "LN:Z:one", "LN:i:1", "LN:i:2"})
	if err != nil {
		t.Fatal(err)
	}

	s := l.(Segment)
	if s.Length == nil || *s.Length != 1 {
		t.Errorf("Length = %v, want 1", s.Length)
	}

	want := []Field{NewField("LN", NewString("one")), NewField("LN", NewInt(2))}
	if !reflect.DeepEqual(s.OptionalFields, want) {
		t.Errorf("OptionalFields = %v, want %v", s.OptionalFields, want)
	}
}

func TestSegment_SetChecksum(t *testing.T) {
	tests := []struct {
		name    string
		nibbles []byte
		want    string
		wantErr error
	}{
		{"checksum", []byte{1, 15, 0xa}, "S\t1\tA\tSH:H:1fa", nil},
		{"no nibbles removes it", []byte{}, "S\t1\tA", nil},
		{"nibble out of range", []byte{1, 16, 0xab}, "S\t1\tA\tSH:H:0", ErrMalformedValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSegment("1", "A")
			if err := s.SetChecksum(0); err != nil {
				t.Fatal(err)
			}

			err := s.SetChecksum(tt.nibbles...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetChecksum() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := s.String(); got != tt.want {
				t.Errorf("Segment.String() = %q, want %q", got, tt.want)
			}

			back, err := ParseLine(strings.Split(s.String(), "\t"))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(back, s) {
				t.Errorf("read back %#v, want %#v", back, s)
			}
		})
	}
}

func TestNewSegment(t *testing.T) {
	s := NewSegment("s1", "")
	if s.Name != "s1" || s.Sequence != "" {
		t.Errorf("NewSegment() = %v", s)
	}
	if s.Length != nil || s.checksum != nil || s.URI != nil || len(s.OptionalFields) != 0 {
		t.Error("NewSegment() should leave every optional attribute absent")
	}

	l := NewLink("a", DefaultOrientation, "b", Backward, "*")
	if l.FromOrient != Forward || l.MapQuality != nil || l.EdgeID != nil {
		t.Errorf("NewLink() = %v", l)
	}
	if got := l.String(); got != "L\ta\t+\tb\t-\t*" {
		t.Errorf("Link.String() = %q", got)
	}

	if h := NewHeader(""); h.Version != nil {
		t.Error("NewHeader(\"\") should leave the version absent")
	}
}
