// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

// Tag byte layout:
//
//	bit 7:     array flag            (1 = array, 0 = scalar)
//	bits 6..3: logical type code     (4 bits)
//	bits 2..0: tag-name-length hint  (0..7; 0 means "read an extended
//	           unsigned LEB128 length that follows the tag byte")
const (
	arrayFlagBit  = 0x80
	typeCodeShift = 3
	typeCodeMask  = 0x0F
	keyHintMask   = 0x07
	maxKeyHint    = 7

	// maxKeyLen is the largest representable key length (2^24 - 1 bytes).
	maxKeyLen = 1<<24 - 1
)

// Wire type codes, as demonstrated by the reference wire samples (a scalar
// int 1 under a 3-byte key encodes as tag 0x2B: nibble 5, not 8; an array of
// signed integers under a 6-byte key encodes as tag 0xCE: nibble 9, not 5).
// The 4-bit code space leaves room for narrower fixed-width integer
// variants (I8/I16/I64) that this implementation never emits and treats as
// unknown on decode.
const (
	wireNull   = 0x0 // Null; scalar only
	wireString = 0x1 // String scalar, StringArray
	wireBinary = 0x2 // Binary scalar, BinaryArray
	wireI32    = 0x5 // 4-byte little-endian int32; scalar only
	wireF64    = 0x7 // IEEE-754 double scalar, F64Array
	wireLEB    = 0x9 // signed LEB128 scalar, LebArray
)

// packTag builds the one-byte record header for a value of the given type
// code and array-ness, and reports the length hint to use for keyLen: 0
// means an extended LEB128 length must follow the tag byte.
func packTag(isArray bool, typeCode byte, keyLen int) (tag byte, hint int) {
	hint = keyLen
	if keyLen == 0 || keyLen > maxKeyHint {
		hint = 0
	}
	tag = byte(hint) & keyHintMask
	tag |= (typeCode & typeCodeMask) << typeCodeShift
	if isArray {
		tag |= arrayFlagBit
	}
	return tag, hint
}

// unpackTag splits a tag byte into its three fields.
func unpackTag(tag byte) (isArray bool, typeCode byte, hint int) {
	isArray = tag&arrayFlagBit != 0
	typeCode = (tag >> typeCodeShift) & typeCodeMask
	hint = int(tag & keyHintMask)
	return isArray, typeCode, hint
}
