package gfa

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ValueType is the type of an optional field's value
type ValueType uint8

const (
	// TypeChar is a single printable character, "A"
	TypeChar ValueType = iota

	// TypeInt is a signed 64 bit integer, "i"
	TypeInt

	// TypeFloat is a single precision float, "f"
	TypeFloat

	// TypeString is printable text without tabs or newlines, "Z"
	TypeString

	// TypeJSON is raw JSON text, "J". It is never re-serialized
	TypeJSON

	// TypeBytes is an array of nibbles written as hex digits, "H"
	TypeBytes

	// TypeIntArray is a numeric array of integers, "B:I"
	TypeIntArray

	// TypeFloatArray is a numeric array of floats, "B:f"
	TypeFloatArray
)

// Code is the type code written between the tag and the value
func (t ValueType) Code() string {
	switch t {
	case TypeChar:
		return "A"
	case TypeInt:
		return "i"
	case TypeFloat:
		return "f"
	case TypeString:
		return "Z"
	case TypeJSON:
		return "J"
	case TypeBytes:
		return "H"
	case TypeIntArray:
		return "B:I"
	case TypeFloatArray:
		return "B:f"
	default:
		return "?"
	}
}

// String returns the type's name
func (t ValueType) String() string {
	switch t {
	case TypeChar:
		return "char"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeJSON:
		return "json"
	case TypeBytes:
		return "bytes"
	case TypeIntArray:
		return "int array"
	case TypeFloatArray:
		return "float array"
	default:
		return "unknown"
	}
}

// Value is the typed value of an optional field. Only the payload matching typ is set.
type Value struct {
	typ ValueType

	char   rune
	i      int64
	f      float32
	s      string // TypeString and TypeJSON
	bytes  []byte
	ints   []int64
	floats []float32
}

var (
	intPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)
)

const hexDigits = "0123456789abcdef"

// NewChar makes an "A" value. The character has to be printable ASCII, '!' to '~'
func NewChar(c rune) (Value, error) {
	if !printable(c) {
		return Value{}, fmt.Errorf("character %q is not printable ASCII: %w", c, ErrMalformedValue)
	}
	return Value{typ: TypeChar, char: c}, nil
}

// NewInt makes an "i" value
func NewInt(i int64) Value { return Value{typ: TypeInt, i: i} }

// NewFloat makes an "f" value. NaN and infinities have no text form and are rejected
func NewFloat(f float32) (Value, error) {
	if !finite(f) {
		return Value{}, fmt.Errorf("float %v is not finite: %w", f, ErrMalformedValue)
	}
	return Value{typ: TypeFloat, f: f}, nil
}

// NewString makes a "Z" value
func NewString(s string) Value { return Value{typ: TypeString, s: s} }

// NewJSON makes a "J" value from raw JSON text
func NewJSON(s string) Value { return Value{typ: TypeJSON, s: s} }

// NewInts makes a "B:I" value
func NewInts(ints ...int64) Value { return Value{typ: TypeIntArray, ints: ints} }

// NewFloats makes a "B:f" value. Every float has to be finite
func NewFloats(floats ...float32) (Value, error) {
	for _, f := range floats {
		if !finite(f) {
			return Value{}, fmt.Errorf("float %v is not finite: %w", f, ErrMalformedValue)
		}
	}
	return Value{typ: TypeFloatArray, floats: floats}, nil
}

// NewBytes makes an "H" value. Each nibble has to be in [0, 15]
func NewBytes(nibbles ...byte) (Value, error) {
	for _, n := range nibbles {
		if n > 0xf {
			return Value{}, fmt.Errorf("nibble %d is out of range [0, 15]: %w", n, ErrMalformedValue)
		}
	}
	return Value{typ: TypeBytes, bytes: nibbles}, nil
}

// Type returns the value's variant
func (v Value) Type() ValueType { return v.typ }

// Code is shorthand for v.Type().Code()
func (v Value) Code() string { return v.typ.Code() }

// Char returns the character of an "A" value
func (v Value) Char() (rune, bool) { return v.char, v.typ == TypeChar }

// Int returns the integer of an "i" value
func (v Value) Int() (int64, bool) { return v.i, v.typ == TypeInt }

// Float returns the float of an "f" value
func (v Value) Float() (float32, bool) { return v.f, v.typ == TypeFloat }

// Str returns the text of a "Z" value
func (v Value) Str() (string, bool) { return v.s, v.typ == TypeString }

// JSON returns the raw text of a "J" value
func (v Value) JSON() (string, bool) { return v.s, v.typ == TypeJSON }

// Bytes returns the nibbles of an "H" value
func (v Value) Bytes() ([]byte, bool) { return v.bytes, v.typ == TypeBytes }

// Ints returns the integers of a "B:I" value
func (v Value) Ints() ([]int64, bool) { return v.ints, v.typ == TypeIntArray }

// Floats returns the floats of a "B:f" value
func (v Value) Floats() ([]float32, bool) { return v.floats, v.typ == TypeFloatArray }

// String renders the value's text, without the tag or type code. Array values
// start with their subtype, so "B:" + v.String() is the full typed text.
func (v Value) String() string {
	switch v.typ {
	case TypeChar:
		return string(v.char)
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return formatFloat(v.f)
	case TypeString, TypeJSON:
		return v.s
	case TypeBytes:
		var sb strings.Builder
		sb.Grow(len(v.bytes))
		for _, n := range v.bytes {
			sb.WriteByte(hexDigits[n&0xf])
		}
		return sb.String()
	case TypeIntArray:
		parts := make([]string, len(v.ints))
		for i, n := range v.ints {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return "I" + strings.Join(parts, ",")
	case TypeFloatArray:
		parts := make([]string, len(v.floats))
		for i, f := range v.floats {
			parts[i] = formatFloat(f)
		}
		return "f" + strings.Join(parts, ",")
	}
	return ""
}

// Equal is structural equality
func (v Value) Equal(o Value) bool {
	return CompareValues(v, o) == 0
}

// CompareValues orders values by type and then by payload
func CompareValues(a, b Value) int {
	if c := cmp.Compare(a.typ, b.typ); c != 0 {
		return c
	}

	switch a.typ {
	case TypeChar:
		return cmp.Compare(a.char, b.char)
	case TypeInt:
		return cmp.Compare(a.i, b.i)
	case TypeFloat:
		return cmp.Compare(a.f, b.f)
	case TypeString, TypeJSON:
		return strings.Compare(a.s, b.s)
	case TypeBytes:
		return slices.Compare(a.bytes, b.bytes)
	case TypeIntArray:
		return slices.Compare(a.ints, b.ints)
	case TypeFloatArray:
		return slices.Compare(a.floats, b.floats)
	}
	return 0
}

// ParseValue decodes the text of a value given its type code. For "B" the
// text starts with the array's subtype, "I" or "f".
func ParseValue(code, text string) (Value, error) {
	switch code {
	case "A":
		r := []rune(text)
		if len(r) != 1 || !printable(r[0]) {
			return Value{}, malformed(code, text)
		}
		return Value{typ: TypeChar, char: r[0]}, nil
	case "i":
		i, err := parseInt(text)
		if err != nil {
			return Value{}, malformed(code, text)
		}
		return NewInt(i), nil
	case "f":
		f, err := parseFloat(text)
		if err != nil {
			return Value{}, malformed(code, text)
		}
		return Value{typ: TypeFloat, f: f}, nil
	case "Z":
		if strings.ContainsAny(text, "\t\n\r") {
			return Value{}, malformed(code, text)
		}
		return NewString(text), nil
	case "J":
		if strings.ContainsAny(text, "\t\n\r") {
			return Value{}, malformed(code, text)
		}
		return NewJSON(text), nil
	case "H":
		return parseHex(text)
	case "B":
		return parseArray(text)
	default:
		return Value{}, fmt.Errorf("failed to parse type %q: %w", code, ErrUnknownTypeCode)
	}
}

// parseHex decodes one nibble per hex digit. Upper case digits are accepted,
// rendering always uses lower case
func parseHex(text string) (Value, error) {
	var nibbles []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			nibbles = append(nibbles, c-'0')
		case c >= 'a' && c <= 'f':
			nibbles = append(nibbles, c-'a'+10)
		case c >= 'A' && c <= 'F':
			nibbles = append(nibbles, c-'A'+10)
		default:
			return Value{}, malformed("H", text)
		}
	}
	return Value{typ: TypeBytes, bytes: nibbles}, nil
}

// parseArray decodes "I1,-2,3" or "f1.0,2.5"
func parseArray(text string) (Value, error) {
	if text == "" {
		return Value{}, malformed("B", text)
	}

	subtype, body := text[0], text[1:]
	var tokens []string
	if body != "" {
		tokens = strings.Split(body, ",")
	}

	switch subtype {
	case 'I':
		var ints []int64
		for _, t := range tokens {
			i, err := parseInt(t)
			if err != nil {
				return Value{}, malformed("B", text)
			}
			ints = append(ints, i)
		}
		return NewInts(ints...), nil
	case 'f':
		var floats []float32
		for _, t := range tokens {
			f, err := parseFloat(t)
			if err != nil {
				return Value{}, malformed("B", text)
			}
			floats = append(floats, f)
		}
		return Value{typ: TypeFloatArray, floats: floats}, nil
	default:
		return Value{}, fmt.Errorf("failed to parse array subtype %q: %w", subtype, ErrMalformedValue)
	}
}

func parseInt(s string) (int64, error) {
	if !intPattern.MatchString(s) {
		return 0, ErrMalformedValue
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float32, error) {
	if !floatPattern.MatchString(s) {
		return 0, ErrMalformedValue
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// formatFloat writes the shortest decimal that reads back to the same float32
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func printable(c rune) bool {
	return c >= '!' && c <= '~'
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func malformed(code, text string) error {
	return fmt.Errorf("failed to parse %q as type %s: %w", text, code, ErrMalformedValue)
}
