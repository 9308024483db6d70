// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import (
	"fmt"

	"github.com/creachadair/bflat/internal/growbuf"
)

// encodeRecord appends one (key, value) record to buf: tag byte, optional
// extended key length, key bytes, value payload.
func encodeRecord(buf *growbuf.Buffer, key []byte, v Value) error {
	if len(key) > maxKeyLen {
		return fmt.Errorf("%w: %d bytes", ErrKeyTooLong, len(key))
	}
	typeCode, isArray, err := wireTypeOf(v)
	if err != nil {
		return err
	}

	tag, hint := packTag(isArray, typeCode, len(key))
	buf.WriteByte(tag)
	if hint == 0 {
		writeUnsignedLEB128(buf, uint64(len(key)))
	}
	buf.Write(key)
	writePayload(buf, v, typeCode, isArray)
	return nil
}

// decodeRecord reads one record from the start of data, returning the key,
// the value, and the number of bytes consumed.
func decodeRecord(data []byte, cfg decodeConfig) (key []byte, val Value, n int, err error) {
	tag := data[0]
	isArray, typeCode, hint := unpackTag(tag)

	pos := 1
	keyLen := hint
	if hint == 0 {
		length, consumed, err := readUnsignedLEB128(data[pos:])
		if err != nil {
			return nil, Value{}, 0, err
		}
		pos += consumed
		if length > uint64(len(data)-pos) {
			return nil, Value{}, 0, ErrTruncated
		}
		keyLen = int(length)
	}

	if keyLen > len(data)-pos {
		return nil, Value{}, 0, ErrTruncated
	}
	key = data[pos : pos+keyLen]
	pos += keyLen

	if !validTypeArrayCombo(typeCode, isArray) {
		return nil, Value{}, 0, fmt.Errorf("%w: code 0x%x array=%v", ErrUnknownType, typeCode, isArray)
	}

	val, consumed, err := readPayload(data[pos:], typeCode, isArray, cfg)
	if err != nil {
		return nil, Value{}, 0, err
	}
	pos += consumed

	return append([]byte(nil), key...), val, pos, nil
}

// validTypeArrayCombo reports whether (typeCode, isArray) is a defined
// combination. Null is scalar-only; I32 is scalar-only; every other defined
// code has both a scalar and an array meaning.
func validTypeArrayCombo(typeCode byte, isArray bool) bool {
	switch typeCode {
	case wireNull, wireI32:
		return !isArray
	case wireString, wireBinary, wireLEB, wireF64:
		return true
	default:
		return false
	}
}
