package pcr

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindVector:
		return "vector"
	default:
		return "null"
	}
}

// Value is an attribute value of a scene record: null, a number, a string,
// a boolean or a vector of numbers. The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	vec  []float64
}

// Null returns the unset value.
func Null() Value { return Value{} }

// Number wraps a numeric attribute such as lens or clip distance.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string attribute.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a boolean attribute such as hide_render.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Vector wraps a numeric vector such as location or rotation_euler.
// The components are copied.
func Vector(components ...float64) Value {
	vec := make([]float64, len(components))
	copy(vec, components)
	return Value{kind: KindVector, vec: vec}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Boolean returns the boolean held by v.
func (v Value) Boolean() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Components returns a copy of the vector held by v.
func (v Value) Components() ([]float64, bool) {
	if v.kind != KindVector {
		return nil, false
	}
	out := make([]float64, len(v.vec))
	copy(out, v.vec)
	return out, true
}

// Equal reports whether v and o hold the same variant and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindVector:
		if len(v.vec) != len(o.vec) {
			return false
		}
		for i := range v.vec {
			if v.vec[i] != o.vec[i] {
				return false
			}
		}
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindVector:
		parts := make([]string, len(v.vec))
		for i, c := range v.vec {
			parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "None"
	}
}

// MarshalJSON encodes v as the matching JSON value.
func (v Value) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	v.write(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

func (v Value) write(stream *jsoniter.Stream) {
	switch v.kind {
	case KindNumber:
		writeNumber(stream, v.num)
	case KindString:
		stream.WriteString(v.str)
	case KindBool:
		stream.WriteBool(v.b)
	case KindVector:
		if len(v.vec) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, c := range v.vec {
			if i > 0 {
				stream.WriteMore()
			}
			writeNumber(stream, c)
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteNil()
	}
}

func writeNumber(stream *jsoniter.Stream, f float64) {
	if stream.Error != nil {
		return
	}
	stream.WriteFloat64(f)
	if stream.Error != nil {
		stream.Error = fmt.Errorf("encode number: %w", stream.Error)
	}
}
