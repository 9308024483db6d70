// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackTagRoundTrip(t *testing.T) {
	cases := []struct {
		isArray  bool
		typeCode byte
		keyLen   int
	}{
		{false, wireNull, 4},
		{false, wireString, 0},
		{false, wireString, 16},
		{false, wireBinary, 6},
		{true, wireBinary, 6},
		{false, wireLEB, 3},
		{false, wireI32, 3},
		{true, wireLEB, 6},
		{false, wireF64, 6},
	}
	for _, c := range cases {
		tag, hint := packTag(c.isArray, c.typeCode, c.keyLen)
		gotArray, gotType, gotHint := unpackTag(tag)
		require.Equal(t, c.isArray, gotArray)
		require.Equal(t, c.typeCode, gotType)
		require.Equal(t, hint, gotHint)
		if c.keyLen >= 1 && c.keyLen <= maxKeyHint {
			require.Equal(t, c.keyLen, gotHint)
		} else {
			require.Equal(t, 0, gotHint)
		}
	}
}

// TestScalarIntTagUsesNarrowestType checks the tag byte computed for a
// scalar int 1 under a 3-byte key: type code 5 (I32, since 1 fits in 32
// bits), array flag clear, length hint 3. See DESIGN.md's "Open Question
// resolution" entry for the derivation of this value.
func TestScalarIntTagUsesNarrowestType(t *testing.T) {
	tag, hint := packTag(false, wireI32, len("foo"))
	require.Equal(t, 3, hint)
	require.Equal(t, byte(0x2B), tag)
}

// TestBinaryArrayTag checks the tag byte for a BinaryArray under a 6-byte
// key.
func TestBinaryArrayTag(t *testing.T) {
	tag, hint := packTag(true, wireBinary, len("binary"))
	require.Equal(t, 6, hint)
	require.Equal(t, byte(0x96), tag)
}

// TestMixedRecordTags checks the tag bytes produced for a run of Null,
// String, and F64 records with varying key lengths.
func TestMixedRecordTags(t *testing.T) {
	tag, _ := packTag(false, wireNull, len("null"))
	require.Equal(t, byte(0x04), tag)

	tag, hint := packTag(false, wireString, len("string goes here"))
	require.Equal(t, 0, hint) // 16 bytes, needs extended length
	require.Equal(t, byte(0x08), tag)

	tag, _ = packTag(false, wireF64, len("double"))
	require.Equal(t, byte(0x3E), tag)
}

// TestUnpackTagExtendedHint checks a scalar I32 tag whose key is longer
// than 7 bytes, forcing the extended-length hint.
func TestUnpackTagExtendedHint(t *testing.T) {
	isArray, typeCode, hint := unpackTag(0x28)
	require.False(t, isArray)
	require.Equal(t, byte(wireI32), typeCode)
	require.Equal(t, 0, hint)
}

// TestLebArrayTag checks the tag byte for an array of signed integers
// under a 6-byte key ("leb128"), whose type code (9) differs from the
// scalar I32 code (5) despite both being "integer" in the logical model.
func TestLebArrayTag(t *testing.T) {
	tag, hint := packTag(true, wireLEB, len("leb128"))
	require.Equal(t, 6, hint)
	require.Equal(t, byte(0xCE), tag)
}
