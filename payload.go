// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/creachadair/bflat/internal/growbuf"
)

// wireTypeOf picks the tag-byte type code for v and validates array
// homogeneity. Integer scalars use the narrowest of I32/LEB128
// that fits; array elements always use LEB128 regardless of range.
func wireTypeOf(v Value) (typeCode byte, isArray bool, err error) {
	if v.IsArray() {
		switch v.ElemKind {
		case KindInt:
			typeCode = wireLEB
		case KindFloat:
			typeCode = wireF64
		case KindString:
			typeCode = wireString
		case KindBinary:
			typeCode = wireBinary
		default:
			return 0, false, fmt.Errorf("%w: array element kind %v", ErrHeterogeneousArray, v.ElemKind)
		}
		for i, e := range v.Array {
			if e.Kind != v.ElemKind {
				return 0, false, fmt.Errorf("%w: element %d is %v, want %v", ErrHeterogeneousArray, i, e.Kind, v.ElemKind)
			}
		}
		return typeCode, true, nil
	}

	switch v.Kind {
	case KindNull:
		return wireNull, false, nil
	case KindString:
		return wireString, false, nil
	case KindBinary:
		return wireBinary, false, nil
	case KindInt:
		if v.Int >= math.MinInt32 && v.Int <= math.MaxInt32 {
			return wireI32, false, nil
		}
		return wireLEB, false, nil
	case KindFloat:
		return wireF64, false, nil
	default:
		return 0, false, fmt.Errorf("bflat: invalid value kind %v", v.Kind)
	}
}

// writePayload appends the value payload for (v, typeCode, isArray): no tag
// byte here, only the body.
func writePayload(buf *growbuf.Buffer, v Value, typeCode byte, isArray bool) {
	if isArray {
		writeUnsignedLEB128(buf, uint64(len(v.Array)))
		for _, e := range v.Array {
			writeElement(buf, e, typeCode)
		}
		return
	}
	switch typeCode {
	case wireNull:
		// no payload
	case wireString, wireBinary:
		writeUnsignedLEB128(buf, uint64(len(v.Bytes)))
		buf.Write(v.Bytes)
	case wireLEB:
		writeSignedLEB128(buf, v.Int)
	case wireF64:
		writeF64(buf, v.Float)
	case wireI32:
		writeI32(buf, int32(v.Int))
	}
}

// writeElement appends one array element's body (no length/count prefix of
// its own beyond what its type requires, e.g. a string element still
// carries its own length).
func writeElement(buf *growbuf.Buffer, e Value, typeCode byte) {
	switch typeCode {
	case wireLEB:
		writeSignedLEB128(buf, e.Int)
	case wireF64:
		writeF64(buf, e.Float)
	case wireString, wireBinary:
		writeUnsignedLEB128(buf, uint64(len(e.Bytes)))
		buf.Write(e.Bytes)
	}
}

func writeI32(buf *growbuf.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func writeF64(buf *growbuf.Buffer, f float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	buf.Write(b[:])
}

// readPayload decodes the value payload for (typeCode, isArray) from the
// start of data, returning the value and the number of bytes consumed.
func readPayload(data []byte, typeCode byte, isArray bool, cfg decodeConfig) (Value, int, error) {
	if isArray {
		return readArrayPayload(data, typeCode, cfg)
	}

	switch typeCode {
	case wireNull:
		return NullValue(), 0, nil
	case wireString, wireBinary:
		v, n, err := readLengthPrefixed(data, typeCode, cfg)
		return v, n, err
	case wireLEB:
		n, consumed, err := readSignedLEB128(data)
		if err != nil {
			return Value{}, 0, err
		}
		return IntValue(n), consumed, nil
	case wireF64:
		f, n, err := readF64(data)
		if err != nil {
			return Value{}, 0, err
		}
		return FloatValue(f), n, nil
	case wireI32:
		v, n, err := readI32(data)
		if err != nil {
			return Value{}, 0, err
		}
		return IntValue(int64(v)), n, nil
	default:
		return Value{}, 0, fmt.Errorf("%w: code 0x%x", ErrUnknownType, typeCode)
	}
}

func readArrayPayload(data []byte, typeCode byte, cfg decodeConfig) (Value, int, error) {
	var elemKind Kind
	switch typeCode {
	case wireLEB:
		elemKind = KindInt
	case wireF64:
		elemKind = KindFloat
	case wireString:
		elemKind = KindString
	case wireBinary:
		elemKind = KindBinary
	default:
		return Value{}, 0, fmt.Errorf("%w: code 0x%x cannot be an array", ErrUnknownType, typeCode)
	}

	count, n, err := readUnsignedLEB128(data)
	if err != nil {
		return Value{}, 0, err
	}
	if count > uint64(len(data)-n) { // every element takes at least one byte
		return Value{}, 0, ErrTruncated
	}
	pos := n
	elems := make([]Value, 0, count)
	for i := uint64(0); i < count; i++ {
		if pos > len(data) {
			return Value{}, 0, ErrTruncated
		}
		rest := data[pos:]
		var e Value
		var consumed int
		switch typeCode {
		case wireLEB:
			val, c, err2 := readSignedLEB128(rest)
			if err2 != nil {
				return Value{}, 0, err2
			}
			e, consumed = IntValue(val), c
		case wireF64:
			val, c, err2 := readF64(rest)
			if err2 != nil {
				return Value{}, 0, err2
			}
			e, consumed = FloatValue(val), c
		case wireString, wireBinary:
			val, c, err2 := readLengthPrefixed(rest, typeCode, cfg)
			if err2 != nil {
				return Value{}, 0, err2
			}
			e, consumed = val, c
		}
		elems = append(elems, e)
		pos += consumed
	}
	v := Value{Array: elems, ElemKind: elemKind}
	return v, pos, nil
}

func readLengthPrefixed(data []byte, typeCode byte, cfg decodeConfig) (Value, int, error) {
	length, n, err := readUnsignedLEB128(data)
	if err != nil {
		return Value{}, 0, err
	}
	end := n + int(length)
	if length > uint64(len(data)-n) || end < n {
		return Value{}, 0, ErrTruncated
	}
	raw := data[n:end]

	kind := KindString
	if typeCode == wireBinary {
		kind = KindBinary
	}
	if cfg.bytesAsString && kind == KindBinary {
		kind = KindString
	}
	if typeCode == wireString && cfg.validateUTF8 && !utf8.Valid(raw) {
		return Value{}, 0, ErrInvalidUTF8
	}

	return Value{Kind: kind, Bytes: append([]byte{}, raw...)}, end, nil
}

func readI32(data []byte) (int32, int, error) {
	if len(data) < 4 {
		return 0, 0, ErrTruncated
	}
	return int32(binary.LittleEndian.Uint32(data[:4])), 4, nil
}

func readF64(data []byte) (float64, int, error) {
	if len(data) < 8 {
		return 0, 0, ErrTruncated
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(data[:8])), 8, nil
}
