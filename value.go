// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

// Kind identifies the logical case of a scalar Value, or of the elements of
// an array Value. It is a small closed set; there is deliberately no Bool
// case (see BoolValue) and no Array case (arrays are represented by the
// Array field being non-nil, not by a Kind).
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBinary
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	default:
		return "invalid"
	}
}

// Value is the tagged logical value carried by a Document entry or produced
// by Decode. A Value is either a scalar (Array == nil, Kind meaningful) or
// an array (Array != nil, possibly empty; ElemKind names the wire element
// type and, for a freshly-encoded Document, must match every element's
// Kind). Decode's element combining may produce an array whose
// elements do not all share one Kind; ElemKind is not meaningful for such a
// value and is left zero.
type Value struct {
	Kind     Kind
	Int      int64
	Float    float64
	Bytes    []byte
	Array    []Value
	ElemKind Kind
}

// IsArray reports whether v represents an array rather than a scalar.
func (v Value) IsArray() bool { return v.Array != nil }

// NullValue returns the Null scalar.
func NullValue() Value { return Value{Kind: KindNull} }

// BoolValue normalizes b to the integer 0 or 1, per the boundary rule that
// booleans are not a distinct logical type.
func BoolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}

// IntValue returns a signed integer scalar.
func IntValue(n int64) Value { return Value{Kind: KindInt, Int: n} }

// FloatValue returns an IEEE-754 double scalar.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue returns a UTF-8 string scalar. s may be empty.
func StringValue(s string) Value { return Value{Kind: KindString, Bytes: []byte(s)} }

// BinaryValue returns an arbitrary byte-string scalar, distinct on the wire
// from String. The input is copied.
func BinaryValue(b []byte) Value {
	return Value{Kind: KindBinary, Bytes: append([]byte(nil), b...)}
}

// IntArrayValue returns a homogeneous array of signed integers.
func IntArrayValue(ns []int64) Value {
	elems := make([]Value, len(ns))
	for i, n := range ns {
		elems[i] = IntValue(n)
	}
	return Value{Array: elems, ElemKind: KindInt}
}

// FloatArrayValue returns a homogeneous array of doubles.
func FloatArrayValue(fs []float64) Value {
	elems := make([]Value, len(fs))
	for i, f := range fs {
		elems[i] = FloatValue(f)
	}
	return Value{Array: elems, ElemKind: KindFloat}
}

// StringArrayValue returns a homogeneous array of UTF-8 strings.
func StringArrayValue(ss []string) Value {
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = StringValue(s)
	}
	return Value{Array: elems, ElemKind: KindString}
}

// BinaryArrayValue returns a homogeneous array of byte strings.
func BinaryArrayValue(bs [][]byte) Value {
	elems := make([]Value, len(bs))
	for i, b := range bs {
		elems[i] = BinaryValue(b)
	}
	return Value{Array: elems, ElemKind: KindBinary}
}

// ArrayValue wraps elems as an array Value as-is, without requiring
// homogeneity. Encode rejects a non-homogeneous array with
// ErrHeterogeneousArray; Decode's element combining produces values built
// this way.
func ArrayValue(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Array: elems}
}

// combine implements the decoder's element-combining rule: a repeated key
// promotes its values into one array. A scalar is promoted to a
// single-element list, an array is flattened, and the two occurrences'
// elements are concatenated in record order. The result is not required to
// be homogeneous.
func combine(prev, next Value) Value {
	var elems []Value
	if prev.IsArray() {
		elems = append(elems, prev.Array...)
	} else {
		elems = append(elems, prev)
	}
	if next.IsArray() {
		elems = append(elems, next.Array...)
	} else {
		elems = append(elems, next)
	}
	return ArrayValue(elems)
}
