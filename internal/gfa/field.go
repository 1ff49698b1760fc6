package gfa

import (
	"fmt"
	"strings"
)

// Field is an optional field: a two character tag and a typed value, "NM:i:3"
type Field struct {
	Tag   string
	Value Value
}

// NewField makes a field from its tag and value
func NewField(tag string, value Value) Field {
	return Field{Tag: tag, Value: value}
}

// String renders the field as tag:type:value
func (f Field) String() string {
	return f.Tag + ":" + typeLetter(f.Value.typ) + ":" + f.Value.String()
}

// Equal compares the tag and then the value
func (f Field) Equal(o Field) bool {
	return CompareFields(f, o) == 0
}

// CompareFields orders fields by tag and then by value
func CompareFields(a, b Field) int {
	if c := strings.Compare(a.Tag, b.Tag); c != 0 {
		return c
	}
	return CompareValues(a.Value, b.Value)
}

// ParseField decodes "tag:type:value". Only the first two colons separate, the value may contain more
func ParseField(text string) (Field, error) {
	parts := strings.SplitN(text, ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return Field{}, fmt.Errorf("failed to split %q into tag:type:value: %w", text, ErrMalformedValue)
	}

	v, err := ParseValue(parts[1], parts[2])
	if err != nil {
		return Field{}, fmt.Errorf("failed to parse field %s: %w", parts[0], err)
	}
	return Field{Tag: parts[0], Value: v}, nil
}

// typeLetter is the code between the tag and the value. Arrays carry their
// subtype at the start of the value instead
func typeLetter(t ValueType) string {
	if t == TypeIntArray || t == TypeFloatArray {
		return "B"
	}
	return t.Code()
}
