// Package growbuf implements an append-only byte buffer that amortizes
// growth by doubling, so an Encoder does not reallocate on every record.
//
// The growth policy is adapted from the buffer-growth strategy used by
// arloliu/mebo's internal/pool.ByteBuffer (double for small buffers, grow by
// a fraction of capacity for large ones), rewritten without sync.Pool:
// a Buffer here is owned end-to-end by a single Encode call, never
// recycled across calls.
package growbuf

// defaultCap is the starting capacity for a Buffer created with no hint.
const defaultCap = 256

// largeThreshold is the capacity above which growth switches from doubling
// to a quarter-of-capacity step, to bound peak over-allocation for very
// large documents.
const largeThreshold = 1 << 20

// Buffer is a growable, append-only byte buffer.
type Buffer struct {
	b []byte
}

// New returns a Buffer with at least capHint bytes of initial capacity.
// A capHint <= 0 uses a small default.
func New(capHint int) *Buffer {
	if capHint <= 0 {
		capHint = defaultCap
	}
	return &Buffer{b: make([]byte, 0, capHint)}
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int { return len(buf.b) }

// Bytes returns the accumulated bytes. The returned slice is only valid
// until the next Write or WriteByte call.
func (buf *Buffer) Bytes() []byte { return buf.b }

// WriteByte appends a single byte, growing the buffer if necessary.
func (buf *Buffer) WriteByte(b byte) {
	buf.grow(1)
	buf.b = append(buf.b, b)
}

// Write appends data, growing the buffer if necessary.
func (buf *Buffer) Write(data []byte) {
	buf.grow(len(data))
	buf.b = append(buf.b, data...)
}

// grow ensures there is room for n additional bytes without reallocating
// sooner than necessary.
func (buf *Buffer) grow(n int) {
	if cap(buf.b)-len(buf.b) >= n {
		return
	}
	need := len(buf.b) + n

	growBy := cap(buf.b)
	if growBy == 0 {
		growBy = defaultCap
	} else if cap(buf.b) > largeThreshold {
		growBy = cap(buf.b) / 4
	}
	newCap := cap(buf.b) + growBy
	if newCap < need {
		newCap = need
	}

	next := make([]byte, len(buf.b), newCap)
	copy(next, buf.b)
	buf.b = next
}
