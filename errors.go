// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import "errors"

// Sentinel errors classify codec failures by kind. Use errors.Is to test
// for a specific kind; wrapped errors carry positional context via %w.
var (
	// ErrTruncated means the input ended mid-record, mid-varint, mid-key,
	// or mid-array payload.
	ErrTruncated = errors.New("bflat: truncated input")

	// ErrUnknownType means a tag byte's type-code field (or its
	// combination with the array flag) does not match a defined case.
	ErrUnknownType = errors.New("bflat: unknown type code")

	// ErrOverflow means a LEB128 value used more than 10 bytes, or decoded
	// to a magnitude outside the signed 64-bit range.
	ErrOverflow = errors.New("bflat: leb128 value overflows 64 bits")

	// ErrHeterogeneousArray means an encoder input sequence mixed element
	// types, or tried to encode an array of Null.
	ErrHeterogeneousArray = errors.New("bflat: array elements are not homogeneous")

	// ErrKeyTooLong means a key's length exceeds the representable bound
	// (2^24 - 1 bytes).
	ErrKeyTooLong = errors.New("bflat: key exceeds maximum length")

	// ErrInvalidUTF8 means a String record failed UTF-8 validation; only
	// returned when WithUTF8Validation is passed to Decode.
	ErrInvalidUTF8 = errors.New("bflat: string is not valid utf-8")
)
