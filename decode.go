// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

// decodeConfig holds the DecodeOption settings for one Decode call.
type decodeConfig struct {
	bytesAsString bool
	validateUTF8  bool
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeConfig)

// WithBytesAsString collapses the Binary logical case into String at
// materialization time, for host bindings that do not distinguish text
// from bytes, mirroring a BYTES_AS_STRING build-time switch in the host
// binding. The wire format is unchanged; this only affects the Kind of the
// returned Value.
func WithBytesAsString() DecodeOption {
	return func(c *decodeConfig) { c.bytesAsString = true }
}

// WithUTF8Validation requests that String records (but not Binary records,
// even when WithBytesAsString is also set) be validated as UTF-8, returning
// ErrInvalidUTF8 for the first record that fails.
func WithUTF8Validation() DecodeOption {
	return func(c *decodeConfig) { c.validateUTF8 = true }
}

// Decode parses data as a BFlat document and returns the combined mapping;
// repeated keys are merged via element combining. Decode is
// total except for ErrTruncated, ErrUnknownType, and ErrOverflow (plus
// ErrInvalidUTF8 when WithUTF8Validation is given); on any error no partial
// mapping is returned.
func Decode(data []byte, opts ...DecodeOption) (*Mapping, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := newMapping()
	rest := data
	for len(rest) > 0 {
		key, val, n, err := decodeRecord(rest, cfg)
		if err != nil {
			return nil, err
		}
		m.put(key, val)
		rest = rest[n:]
	}
	return m, nil
}
