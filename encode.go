// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import "github.com/creachadair/bflat/internal/growbuf"

// estimateSize gives the growbuf a reasonable starting capacity so typical
// documents need at most one or two internal reallocations.
func estimateSize(doc *Document) int {
	const perEntryGuess = 16
	n := doc.Len() * perEntryGuess
	if n < 64 {
		n = 64
	}
	return n
}

// Encode serializes doc to BFlat wire format, in the order its entries were
// added. Encode is total except for ErrHeterogeneousArray (an array entry
// mixes element kinds, or is an array of Null) and ErrKeyTooLong (a key
// exceeds 2^24-1 bytes); on either error no partial output is returned.
func Encode(doc *Document) ([]byte, error) {
	buf := growbuf.New(estimateSize(doc))
	for _, e := range doc.Entries() {
		if err := encodeRecord(buf, e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
