// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import "github.com/creachadair/bflat/internal/growbuf"

// maxLEB128Bytes bounds how many bytes a single LEB128 value may occupy.
// A decoder must accept any length up to this many bytes (enough to cover
// a signed or unsigned 64-bit value); more than this is Overflow.
const maxLEB128Bytes = 10

// writeUnsignedLEB128 appends v in canonical unsigned LEB128 form: 7
// payload bits per byte, continuation bit in the high bit, shortest
// encoding.
func writeUnsignedLEB128(buf *growbuf.Buffer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf.WriteByte(b | 0x80)
		} else {
			buf.WriteByte(b)
			return
		}
	}
}

// writeSignedLEB128 appends v in canonical signed LEB128 form: the final
// byte's top payload bit is the sign, sign-extended to the full width.
func writeSignedLEB128(buf *growbuf.Buffer, v int64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7 // arithmetic shift: sign bit propagates
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			buf.WriteByte(b)
			return
		}
		buf.WriteByte(b | 0x80)
	}
}

// readUnsignedLEB128 decodes an unsigned LEB128 value from the start of
// data, returning the value and the number of bytes consumed.
func readUnsignedLEB128(data []byte) (uint64, int, error) {
	var result uint64
	var shift uint
	for i := 0; i < len(data); i++ {
		if i == maxLEB128Bytes {
			return 0, 0, ErrOverflow
		}
		b := data[i]
		if i == maxLEB128Bytes-1 && b&0x7e != 0 {
			return 0, 0, ErrOverflow // bits beyond 64
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrTruncated
}

// readSignedLEB128 decodes a signed LEB128 value from the start of data,
// returning the value and the number of bytes consumed.
func readSignedLEB128(data []byte) (int64, int, error) {
	var result int64
	var shift uint
	var b byte
	i := 0
	for {
		if i >= len(data) {
			return 0, 0, ErrTruncated
		}
		if i == maxLEB128Bytes {
			return 0, 0, ErrOverflow
		}
		b = data[i]
		if i == maxLEB128Bytes-1 && b&0x7f != 0 && b&0x7f != 0x7f {
			return 0, 0, ErrOverflow // bits beyond 64 are not a sign extension
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		i++
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 64 && b&0x40 != 0 {
		result |= -1 << shift
	}
	return result, i, nil
}
