package gfa

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Field
		wantErr error
	}{
		{"int", "NM:i:-42", NewField("NM", NewInt(-42)), nil},
		{"string with colons", "UR:Z:http://x.org/a.fa", NewField("UR", NewString("http://x.org/a.fa")), nil},
		{"int array", "xx:B:I1,-2,3", NewField("xx", NewInts(1, -2, 3)), nil},
		{"float array", "yy:B:f1.0,2.5", NewField("yy", must(NewFloats(1, 2.5))), nil},
		{"json", `zz:J:{"a":1}`, NewField("zz", NewJSON(`{"a":1}`)), nil},
		{"no type", "NM", Field{}, ErrMalformedValue},
		{"one colon", "NM:i", Field{}, ErrMalformedValue},
		{"no tag", ":i:1", Field{}, ErrMalformedValue},
		{"bad hex", "SH:H:1g", Field{}, ErrMalformedValue},
		{"unknown type", "NM:q:1", Field{}, ErrUnknownTypeCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseField(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseField() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseField() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField_String(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"char", NewField("ch", must(NewChar('A'))), "ch:A:A"},
		{"float", NewField("fl", must(NewFloat(3.14))), "fl:f:3.14"},
		{"bytes", NewField("SH", mustBytes(t, 1, 10, 15)), "SH:H:1af"},
		{"int array", NewField("ia", NewInts(1, -2, 3)), "ia:B:I1,-2,3"},
		{"float array", NewField("fa", must(NewFloats(1, 2.5))), "fa:B:f1,2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.field.String()
			if got != tt.want {
				t.Errorf("Field.String() = %q, want %q", got, tt.want)
			}

			back, err := ParseField(got)
			if err != nil || !back.Equal(tt.field) {
				t.Errorf("ParseField(%q) = %v, %v", got, back, err)
			}
		})
	}
}

func TestCompareFields(t *testing.T) {
	a := NewField("AA", NewInt(5))
	b := NewField("BB", NewInt(1))

	if CompareFields(a, b) >= 0 {
		t.Error("fields should order by tag first")
	}
	if CompareFields(a, NewField("AA", NewInt(6))) >= 0 {
		t.Error("fields with the same tag should order by value")
	}
	if !a.Equal(NewField("AA", NewInt(5))) {
		t.Error("identical fields should be equal")
	}
}
