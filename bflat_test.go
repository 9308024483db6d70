// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDecodeEncodeIsIdentityOnACanonicalDocument checks that decoding a
// document with no duplicate keys and re-encoding it in the decoded order
// reproduces the original bytes exactly.
func TestDecodeEncodeIsIdentityOnACanonicalDocument(t *testing.T) {
	doc := NewDocument().
		PutInt([]byte("a"), 1).
		PutFloat([]byte("b"), 2.5).
		PutString([]byte("c"), "hello").
		PutBinary([]byte("d"), []byte{1, 2, 3}).
		PutIntArray([]byte("e"), []int64{1, 2, 3}).
		PutNull([]byte("f"))
	data, err := Encode(doc)
	require.NoError(t, err)

	m, err := Decode(data)
	require.NoError(t, err)

	roundTrip := NewDocument()
	for i := 0; i < m.Len(); i++ {
		k, v := m.At(i)
		roundTrip.Put(k, v)
	}
	data2, err := Encode(roundTrip)
	require.NoError(t, err)
	require.Equal(t, data, data2)
}

// TestFullInt64RangeRoundTrips checks that the extremes and a sampling of
// the signed 64-bit range survive an encode/decode cycle exactly.
func TestFullInt64RangeRoundTrips(t *testing.T) {
	values := []int64{
		0, 1, -1,
		math.MaxInt32, math.MinInt32,
		int64(math.MaxInt32) + 1, int64(math.MinInt32) - 1,
		math.MaxInt64, math.MinInt64,
	}
	for _, v := range values {
		doc := NewDocument().PutInt([]byte("v"), v)
		data, err := Encode(doc)
		require.NoError(t, err)

		m, err := Decode(data)
		require.NoError(t, err)
		got, ok := m.Get([]byte("v"))
		require.True(t, ok)
		require.Equal(t, v, got.Int)
	}
}

// TestConcatenatingEncodedDocumentsCombinesRepeatedKeys checks that the
// concatenated bytes of two encoded documents decode as one document: the
// key present in both is combined into an array in record order, and the
// keys present in only one are kept — the wire format has no framing that
// would prevent simple concatenation.
func TestConcatenatingEncodedDocumentsCombinesRepeatedKeys(t *testing.T) {
	doc1 := NewDocument().PutInt([]byte("k"), 1).PutString([]byte("only1"), "x")
	doc2 := NewDocument().PutInt([]byte("k"), 2).PutString([]byte("only2"), "y")

	data1, err := Encode(doc1)
	require.NoError(t, err)
	data2, err := Encode(doc2)
	require.NoError(t, err)

	combined := append(append([]byte(nil), data1...), data2...)
	m, err := Decode(combined)
	require.NoError(t, err)

	v, ok := m.Get([]byte("k"))
	require.True(t, ok)
	require.Equal(t, []Value{IntValue(1), IntValue(2)}, v.Array)

	_, ok = m.Get([]byte("only1"))
	require.True(t, ok)
	_, ok = m.Get([]byte("only2"))
	require.True(t, ok)
}

// TestTruncationAlwaysFails checks that truncating an encoded document at
// any prefix boundary shorter than the full length either fails to decode
// or decodes to something other than the full mapping — it never silently
// succeeds with the complete value set.
func TestTruncationAlwaysFails(t *testing.T) {
	doc := NewDocument().
		PutString([]byte("s"), "a reasonably long string value").
		PutIntArray([]byte("ints"), []int64{10, 20, 30, 40}).
		PutFloat([]byte("f"), 1.5)
	data, err := Encode(doc)
	require.NoError(t, err)

	for n := 0; n < len(data); n++ {
		m, err := Decode(data[:n])
		if err == nil {
			require.Less(t, m.Len(), 3, "short prefix %d decoded a complete 3-key mapping", n)
		}
	}
}

func TestDecodeMultipleTimesIsIdempotent(t *testing.T) {
	doc := NewDocument().PutString([]byte("s"), "hi").PutInt([]byte("n"), 5)
	data, err := Encode(doc)
	require.NoError(t, err)

	m1, err := Decode(data)
	require.NoError(t, err)
	m2, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, m1.Keys(), m2.Keys())
	for i := 0; i < m1.Len(); i++ {
		_, v1 := m1.At(i)
		_, v2 := m2.At(i)
		require.True(t, valuesEqual(v1, v2))
	}
}
