// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package bflat implements the BFlat binary serialization codec for flat
// (single-level) key/value mappings whose values are scalars or homogeneous
// arrays of scalars.
//
// A BFlat document is a concatenation of records, with no header and no
// trailer. Each record is a tag byte, an optional extended key-length
// varint, the key bytes, and a value payload. See the package-level
// constants and the Encode/Decode functions for the wire format details.
//
// The codec treats keys as opaque byte strings; it does not interpret or
// validate them as UTF-8. Values are a small closed set of logical types:
// Null, signed integers, IEEE-754 doubles, UTF-8 strings, arbitrary binary
// strings, and homogeneous arrays of any of those (except Null).
package bflat
